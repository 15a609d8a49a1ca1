package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/handlers"
)

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat/conversations", handler.StartConversation)
	router.POST("/chat/conversations/:conversation_id/messages", handler.SendMessage)
	router.GET("/chat/conversations/:conversation_id/messages", handler.ListMessages)
}
