package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerTeamRoutes(api *gin.RouterGroup, teamHandler *handlers.TeamHandler) {
	teams := api.Group("/teams")
	{
		teams.GET("", teamHandler.List)
		teams.GET("/:id", teamHandler.Get)
		teams.POST("", teamHandler.Create)
		teams.PUT("/:id", teamHandler.Update)
		teams.PATCH("/:id", teamHandler.Update)
		teams.DELETE("/:id", teamHandler.Delete)
		teams.GET("/:id/members", teamHandler.ListMembers)
		teams.POST("/:id/members", teamHandler.AddMember)
		teams.PUT("/:id/members/:userID", teamHandler.UpdateMember)
		teams.PATCH("/:id/members/:userID", teamHandler.UpdateMember)
		teams.DELETE("/:id/members/:userID", teamHandler.RemoveMember)
	}
}
