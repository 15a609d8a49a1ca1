package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/auth"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/requests"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/responses"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// ChatHandler exposes HTTP entrypoints for the messaging API.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("handler", "chat").Logger(),
	}
}

// StartConversation handles POST /v1/chat/conversations
// @Summary Start or find a conversation with a peer
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body requests.StartConversationRequest true "Peer"
// @Success 201 {object} responses.ConversationPayload
// @Failure 400 {object} responses.ErrorResponse
// @Router /v1/chat/conversations [post]
func (h *ChatHandler) StartConversation(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.StartConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "peer_id is required", "chat-start-bad-request")
		return
	}

	conv, err := h.service.StartConversation(c.Request.Context(), subject, req.PeerID)
	if err != nil {
		responses.HandleError(c, err, "failed to start conversation")
		return
	}

	c.JSON(http.StatusCreated, responses.FromConversation(conv))
}

// SendMessage handles POST /v1/chat/conversations/:conversation_id/messages
// @Summary Send a message
// @Tags Chat
// @Accept json
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Param request body requests.SendMessageRequest true "Message"
// @Success 201 {object} responses.MessagePayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chat/conversations/{conversation_id}/messages [post]
func (h *ChatHandler) SendMessage(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "body is required", "chat-send-bad-request")
		return
	}

	msg, err := h.service.SendMessage(c.Request.Context(), subject, c.Param("conversation_id"), req.Body)
	if err != nil {
		responses.HandleError(c, err, "failed to send message")
		return
	}

	c.JSON(http.StatusCreated, responses.FromMessage(msg))
}

// ListMessages handles GET /v1/chat/conversations/:conversation_id/messages
// @Summary List the newest messages of a conversation
// @Tags Chat
// @Produce json
// @Param conversation_id path string true "Conversation ID"
// @Success 200 {object} responses.MessageListPayload
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/chat/conversations/{conversation_id}/messages [get]
func (h *ChatHandler) ListMessages(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	msgs, err := h.service.ListMessages(c.Request.Context(), subject, c.Param("conversation_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to list messages")
		return
	}

	c.JSON(http.StatusOK, responses.FromMessages(msgs))
}

// requireSubject aborts with 401 when the request carries no authenticated
// subject.
func requireSubject(c *gin.Context) (string, bool) {
	subject := auth.SubjectFromContext(c)
	if subject == "" {
		responses.HandleNewError(c, platformerrors.ErrorTypeUnauthorized, "authentication required", "missing-subject")
		return "", false
	}
	return subject, true
}
