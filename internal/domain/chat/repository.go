package chat

import (
	"context"

	"github.com/google/uuid"
)

// ConversationRepository persists conversation rows.
type ConversationRepository interface {
	// FindOrCreate inserts the conversation unless a row for the same
	// canonical pair already exists, and returns the winning row. Safe under
	// concurrent first contact.
	FindOrCreate(ctx context.Context, conv *Conversation) (*Conversation, error)

	// FindByID fetches a conversation by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*Conversation, error)
}

// MessageRepository persists message rows.
type MessageRepository interface {
	// Append inserts the message and advances the conversation's
	// last_message_at in a single transaction.
	Append(ctx context.Context, msg *Message) error

	// ListByConversation returns up to limit messages, newest first.
	ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]Message, error)
}

// IdentityResolver maps an authenticated subject to its participant identity.
type IdentityResolver interface {
	Resolve(ctx context.Context, subject string) (uuid.UUID, error)
}

// Notifier is invoked after a message lands so the peer can be told about it.
type Notifier interface {
	NotifyNewMessage(ctx context.Context, recipientID uuid.UUID, msg *Message) error
}
