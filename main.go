package main

import (
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lkwun/formbuilder-go/config"
	"github.com/lkwun/formbuilder-go/db"
	_ "github.com/lkwun/formbuilder-go/docs"
	"github.com/lkwun/formbuilder-go/middleware"
	"github.com/lkwun/formbuilder-go/routes"
)

// @title Form Builder API
// @version 1.0
// @description REST backend for the no-code form builder: auth, form design, public submissions.
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration from environment variables and .env file
	config.LoadConfig()

	// Initialize JWT signing key
	middleware.Init()

	// Initialize database connection
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal(err)
	}
}
