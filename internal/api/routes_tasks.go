package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerTaskRoutes(api *gin.RouterGroup, taskHandler *handlers.TaskHandler) {
	tasks := api.Group("/tasks")
	{
		tasks.GET("", taskHandler.List)
		tasks.GET("/:id", taskHandler.Get)
		tasks.POST("", taskHandler.Create)
		tasks.PUT("/:id", taskHandler.Update)
		tasks.PATCH("/:id", taskHandler.Update)
		tasks.PATCH("/:id/complete", taskHandler.Complete)
		tasks.DELETE("/:id", taskHandler.Delete)
	}
}
