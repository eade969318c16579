package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerProjectRoutes(api *gin.RouterGroup, projectHandler *handlers.ProjectHandler) {
	projects := api.Group("/projects")
	{
		projects.GET("", projectHandler.List)
		projects.GET("/:id", projectHandler.Get)
		projects.POST("", projectHandler.Create)
		projects.PUT("/:id", projectHandler.Update)
		projects.PATCH("/:id", projectHandler.Update)
		projects.DELETE("/:id", projectHandler.Delete)
	}
}
