package routes

import (
	"log"
	"strconv"

	_ "stonecraft/docs" // generated swagger spec
	"stonecraft/internal/adapter/http/handlers"
	"stonecraft/internal/adapter/http/middleware"
	"stonecraft/internal/adapter/persistence/repository"
	"stonecraft/internal/infrastructure/database"
	"stonecraft/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	ids := repository.NewSequenceDynamoAllocator(ddb)
	estimateRepo := repository.NewEstimateDynamoRepository(ddb)
	taskRepo := repository.NewTaskDynamoRepository(ddb)

	taskUseCase := usecase.NewTaskUseCase(taskRepo, ids)
	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo, taskUseCase, ids)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)

	// The frontend expects unversioned paths at the root.
	root := router.Group("")
	addPingRoutes(root)
	addEstimateRoutes(root, estimateHandler)
	addTaskRoutes(root, taskHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
