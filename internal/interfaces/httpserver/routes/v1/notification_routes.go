package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/handlers"
)

func registerNotificationRoutes(router gin.IRoutes, handler *handlers.NotificationHandler) {
	router.GET("/notifications", handler.ListNotifications)
	router.POST("/notifications/:notification_id/read", handler.MarkRead)
}
