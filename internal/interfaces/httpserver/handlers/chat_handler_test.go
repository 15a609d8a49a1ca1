package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/auth"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/handlers"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// MockChatService is a mock implementation of chat.Service for testing.
type MockChatService struct {
	StartConversationFunc func(ctx context.Context, subject, peerID string) (*chat.Conversation, error)
	SendMessageFunc       func(ctx context.Context, subject, conversationID, body string) (*chat.Message, error)
	ListMessagesFunc      func(ctx context.Context, subject, conversationID string) ([]chat.Message, error)
}

func (m *MockChatService) StartConversation(ctx context.Context, subject, peerID string) (*chat.Conversation, error) {
	if m.StartConversationFunc != nil {
		return m.StartConversationFunc(ctx, subject, peerID)
	}
	return nil, nil
}

func (m *MockChatService) SendMessage(ctx context.Context, subject, conversationID, body string) (*chat.Message, error) {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, subject, conversationID, body)
	}
	return nil, nil
}

func (m *MockChatService) ListMessages(ctx context.Context, subject, conversationID string) ([]chat.Message, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, subject, conversationID)
	}
	return nil, nil
}

func newChatRouter(service chat.Service, subject string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	if subject != "" {
		router.Use(func(c *gin.Context) {
			c.Set(auth.SubjectKey, subject)
			c.Next()
		})
	}

	handler := handlers.NewChatHandler(service, zerolog.Nop())
	router.POST("/v1/chat/conversations", handler.StartConversation)
	router.POST("/v1/chat/conversations/:conversation_id/messages", handler.SendMessage)
	router.GET("/v1/chat/conversations/:conversation_id/messages", handler.ListMessages)
	return router
}

func domainError(errorType platformerrors.ErrorType, message, code string) error {
	return platformerrors.NewError(context.Background(), platformerrors.LayerDomain, errorType, message, nil, code)
}

func TestStartConversationReturnsCreated(t *testing.T) {
	convID := uuid.New()
	service := &MockChatService{
		StartConversationFunc: func(ctx context.Context, subject, peerID string) (*chat.Conversation, error) {
			return &chat.Conversation{
				ID:              convID,
				ParticipantLow:  uuid.New(),
				ParticipantHigh: uuid.New(),
				CreatedAt:       time.Now().UTC(),
			}, nil
		},
	}
	router := newChatRouter(service, "alice")

	body, _ := json.Marshal(map[string]string{"peer_id": uuid.New().String()})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if payload["id"] != convID.String() {
		t.Errorf("expected conversation id %s, got %v", convID, payload["id"])
	}
}

func TestStartConversationWithoutPeerReturnsBadRequest(t *testing.T) {
	router := newChatRouter(&MockChatService{}, "alice")

	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestStartConversationWithoutSubjectReturnsUnauthorized(t *testing.T) {
	router := newChatRouter(&MockChatService{}, "")

	body, _ := json.Marshal(map[string]string{"peer_id": uuid.New().String()})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestStartConversationUnlinkedIdentityReturnsBadRequest(t *testing.T) {
	service := &MockChatService{
		StartConversationFunc: func(ctx context.Context, subject, peerID string) (*chat.Conversation, error) {
			return nil, domainError(platformerrors.ErrorTypeValidation, "participant identity not linked", "identity-not-linked")
		},
	}
	router := newChatRouter(service, "alice")

	body, _ := json.Marshal(map[string]string{"peer_id": uuid.New().String()})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestSendMessageReturnsCreated(t *testing.T) {
	convID := uuid.New()
	service := &MockChatService{
		SendMessageFunc: func(ctx context.Context, subject, conversationID, body string) (*chat.Message, error) {
			return &chat.Message{
				ID:             uuid.New(),
				ConversationID: convID,
				SenderID:       uuid.New(),
				Body:           body,
				SentAt:         time.Now().UTC(),
			}, nil
		},
	}
	router := newChatRouter(service, "alice")

	body, _ := json.Marshal(map[string]string{"body": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations/"+convID.String()+"/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSendMessageToForeignConversationReturnsForbidden(t *testing.T) {
	service := &MockChatService{
		SendMessageFunc: func(ctx context.Context, subject, conversationID, body string) (*chat.Message, error) {
			return nil, domainError(platformerrors.ErrorTypeForbidden, "not a participant of this conversation", "chat-not-participant")
		},
	}
	router := newChatRouter(service, "alice")

	body, _ := json.Marshal(map[string]string{"body": "hello"})
	req := httptest.NewRequest(http.MethodPost, "/v1/chat/conversations/"+uuid.New().String()+"/messages", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403, got %d", rec.Code)
	}
}

func TestListMessagesUnknownConversationReturnsNotFound(t *testing.T) {
	service := &MockChatService{
		ListMessagesFunc: func(ctx context.Context, subject, conversationID string) ([]chat.Message, error) {
			return nil, domainError(platformerrors.ErrorTypeNotFound, "conversation not found", "conversation-not-found")
		},
	}
	router := newChatRouter(service, "alice")

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/conversations/"+uuid.New().String()+"/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestListMessagesReturnsNewestFirstPayload(t *testing.T) {
	convID := uuid.New()
	now := time.Now().UTC()
	service := &MockChatService{
		ListMessagesFunc: func(ctx context.Context, subject, conversationID string) ([]chat.Message, error) {
			return []chat.Message{
				{ID: uuid.New(), ConversationID: convID, SenderID: uuid.New(), Body: "latest", SentAt: now},
				{ID: uuid.New(), ConversationID: convID, SenderID: uuid.New(), Body: "older", SentAt: now.Add(-time.Minute)},
			}, nil
		},
	}
	router := newChatRouter(service, "alice")

	req := httptest.NewRequest(http.MethodGet, "/v1/chat/conversations/"+convID.String()+"/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload struct {
		Data []struct {
			Body string `json:"body"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(payload.Data) != 2 || payload.Data[0].Body != "latest" {
		t.Errorf("unexpected payload order: %+v", payload.Data)
	}
}
