package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lkwun/formbuilder-go/handlers"
	"github.com/lkwun/formbuilder-go/middleware"
	"github.com/lkwun/formbuilder-go/repositories"
	"github.com/lkwun/formbuilder-go/services"
	"github.com/lkwun/formbuilder-go/stream"
)

func RegisterRoutes(r *gin.Engine) {

	// init
	repos_instance := repositories.New()
	hub := stream.NewHub()
	services_instance := services.New(repos_instance, hub)
	handlers_instance := handlers.New(services_instance, hub)

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers_instance.Auth.Register)
		auth.POST("/login", handlers_instance.Auth.Login)
		auth.GET("/check", middleware.JWTAuthMiddleware(), handlers_instance.Auth.Check)
	}

	forms := api.Group("/forms")
	{
		// public routes: form read and submission create
		forms.GET("/:id", handlers_instance.Form.GetPublicForm)
		forms.POST("/:id/submit", handlers_instance.Submission.CreateSubmission)

		owned := forms.Group("", middleware.JWTAuthMiddleware())
		{
			owned.POST("", handlers_instance.Form.CreateForm)
			owned.GET("", handlers_instance.Form.GetForms)
			owned.PUT("/:id", handlers_instance.Form.UpdateForm)
			owned.DELETE("/:id", handlers_instance.Form.DeleteForm)

			owned.POST("/:id/fields", handlers_instance.Form.AddField)
			owned.PUT("/:id/fields/:fieldId", handlers_instance.Form.UpdateField)
			owned.DELETE("/:id/fields/:fieldId", handlers_instance.Form.DeleteField)
			owned.POST("/:id/fields/:fieldId/move", handlers_instance.Form.MoveField)

			owned.GET("/:id/submissions", handlers_instance.Submission.GetFormSubmissions)
			owned.GET("/:id/submissions/export", handlers_instance.Submission.ExportSubmissionsCSV)
			owned.GET("/:id/submissions/stream", handlers_instance.Submission.StreamSubmissions)
		}
	}
}
