package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerAuthRoutes(auth *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
}
