package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerCalendarRoutes(api *gin.RouterGroup, calendarHandler *handlers.CalendarHandler) {
	calendar := api.Group("/calendar")
	{
		calendar.GET("", calendarHandler.List)
		calendar.GET("/:id", calendarHandler.Get)
		calendar.POST("", calendarHandler.Create)
		calendar.PUT("/:id", calendarHandler.Update)
		calendar.PATCH("/:id", calendarHandler.Update)
		calendar.DELETE("/:id", calendarHandler.Delete)
	}
}
