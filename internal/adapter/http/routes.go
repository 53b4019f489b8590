package http

import (
	"github.com/gin-gonic/gin"

	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/handlers"
	"github.com/onurcagigan-dotcom/planet-event/internal/adapter/http/middleware"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	boardHandler *handlers.BoardHandler,
	sessionHandler *handlers.SessionHandler,
	syncHandler *handlers.SyncHandler,
	exportHandler *handlers.ExportHandler,
) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/snapshot", boardHandler.GetSnapshot)
		api.POST("/tasks", boardHandler.CreateTask)
		api.PATCH("/tasks/:id", boardHandler.UpdateTask)
		api.DELETE("/tasks/:id", boardHandler.DeleteTask)
		api.POST("/categories", boardHandler.CreateCategory)

		api.POST("/session", sessionHandler.Login)
		api.GET("/session", sessionHandler.GetSession)
		api.DELETE("/session", sessionHandler.Logout)

		api.GET("/sync", syncHandler.GetState)
		api.POST("/sync", syncHandler.TriggerSync)

		api.GET("/export", exportHandler.Export)
	}
}
