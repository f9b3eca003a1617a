package routes

import (
	"stonecraft/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathTasks     = "/tasks"
)

func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.GET("", h.ListEstimates)
		estimates.POST("", h.CreateEstimate)
		estimates.POST("/quote", h.QuoteEstimate)
		estimates.PUT("/:id", h.UpdateEstimate)
		estimates.DELETE("/:id", h.DeleteEstimate)
		estimates.POST("/:id/duplicate", h.DuplicateEstimate)
	}
}

func addTaskRoutes(rg *gin.RouterGroup, h *handlers.TaskHandler) {
	tasks := rg.Group(PathTasks)
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.PUT("/:id/update", h.CompleteTask)
	}
}
