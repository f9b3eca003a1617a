package main

import (
	_ "stonecraft/docs"
	"stonecraft/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Fabrication Estimate API
// @version         1.0
// @description     Cost estimates and follow-up tasks for stone fabrication jobs, backed by DynamoDB.

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
