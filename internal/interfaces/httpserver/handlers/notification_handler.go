package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/notification"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/responses"
)

// NotificationHandler exposes HTTP entrypoints for the notification inbox.
type NotificationHandler struct {
	service notification.Service
	log     zerolog.Logger
}

// NewNotificationHandler constructs the handler.
func NewNotificationHandler(service notification.Service, log zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		log:     log.With().Str("handler", "notification").Logger(),
	}
}

// ListNotifications handles GET /v1/notifications
// @Summary List the caller's notifications
// @Tags Notifications
// @Produce json
// @Success 200 {object} responses.NotificationListPayload
// @Failure 400 {object} responses.ErrorResponse
// @Router /v1/notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	items, err := h.service.List(c.Request.Context(), subject)
	if err != nil {
		responses.HandleError(c, err, "failed to list notifications")
		return
	}

	c.JSON(http.StatusOK, responses.FromNotifications(items))
}

// MarkRead handles POST /v1/notifications/:notification_id/read
// @Summary Mark a notification as read
// @Tags Notifications
// @Param notification_id path string true "Notification ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/notifications/{notification_id}/read [post]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), subject, c.Param("notification_id")); err != nil {
		responses.HandleError(c, err, "failed to mark notification read")
		return
	}

	c.Status(http.StatusNoContent)
}
