package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yoockh/admissions/internal/api/handlers"
	"github.com/yoockh/admissions/internal/api/middleware"
)

type Deps struct {
	Applications *handlers.ApplicationHandler
	Files        *handlers.FileHandler
	Storage      *handlers.StorageHandler
	JWT          middleware.JWTConfig
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// Public intake
	api.POST("/applications", d.Applications.Submit)
	api.POST("/application-files", d.Files.Ingest)
	api.POST("/uploads", d.Storage.Upload)

	auth := api.Group("/")
	auth.Use(middleware.JWTAuth(d.JWT))
	auth.GET("/storage/url", d.Storage.ResolveURL)

	admin := api.Group("/admin")
	admin.Use(middleware.JWTAuth(d.JWT), middleware.RequireAdmin())
	admin.GET("/applications", d.Applications.List)
	admin.GET("/applications/:application_id", d.Applications.Get)
	admin.GET("/applications/:application_id/files", d.Files.ListByApplication)
	admin.GET("/applications/:application_id/events", d.Applications.Events)
	admin.GET("/review-queue", d.Files.ReviewQueue)
}
