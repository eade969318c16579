package api

import (
	"github.com/gin-gonic/gin"

	"github.com/daylist-io/daylist/internal/handlers"
)

func registerChatRoutes(api *gin.RouterGroup, conversationHandler *handlers.ConversationHandler, messageHandler *handlers.MessageHandler) {
	conversations := api.Group("/conversations")
	{
		conversations.GET("", conversationHandler.List)
		conversations.GET("/:id", conversationHandler.Get)
		conversations.POST("", conversationHandler.Create)
		conversations.PUT("/:id", conversationHandler.Update)
		conversations.PATCH("/:id", conversationHandler.Update)
		conversations.DELETE("/:id", conversationHandler.Delete)
		conversations.GET("/:id/messages", conversationHandler.ListMessages)
		conversations.POST("/:id/messages", conversationHandler.CreateMessage)
	}

	messages := api.Group("/messages")
	{
		messages.POST("", messageHandler.Create)
		messages.GET("/:id", messageHandler.Get)
		messages.PUT("/:id", messageHandler.Update)
		messages.PATCH("/:id", messageHandler.Update)
		messages.DELETE("/:id", messageHandler.Delete)
	}
}
