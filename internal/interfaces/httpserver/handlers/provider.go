package handlers

import (
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/domain/notification"
	"github.com/gustavogago/Produto-de-software/internal/domain/profile"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Chat         *ChatHandler
	Item         *ItemHandler
	Profile      *ProfileHandler
	Notification *NotificationHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	chatService chat.Service,
	catalogService catalog.Service,
	profileService profile.Service,
	notificationService notification.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Chat:         NewChatHandler(chatService, log),
		Item:         NewItemHandler(catalogService, log),
		Profile:      NewProfileHandler(profileService, log),
		Notification: NewNotificationHandler(notificationService, log),
	}
}
