package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
)

// Conversation represents the database schema for one-to-one conversations.
// The composite unique index on the canonical pair is what makes concurrent
// first contact collapse onto a single row.
type Conversation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ParticipantLow  uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_conversation_pair;not null"`
	ParticipantHigh uuid.UUID  `gorm:"type:uuid;uniqueIndex:idx_conversation_pair;not null"`
	CreatedAt       time.Time  `gorm:"autoCreateTime"`
	LastMessageAt   *time.Time `gorm:"type:timestamptz"`

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// Message represents the database schema for conversation messages.
type Message struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConversationID uuid.UUID  `gorm:"type:uuid;index:idx_message_conversation_sent;not null"`
	SenderID       uuid.UUID  `gorm:"type:uuid;not null"`
	Body           string     `gorm:"type:text;not null"`
	SentAt         time.Time  `gorm:"type:timestamptz;index:idx_message_conversation_sent,sort:desc;not null"`
	ReadAt         *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// EtoD converts database entity to domain model
func (c *Conversation) EtoD() *chat.Conversation {
	return &chat.Conversation{
		ID:              c.ID,
		ParticipantLow:  c.ParticipantLow,
		ParticipantHigh: c.ParticipantHigh,
		CreatedAt:       c.CreatedAt,
		LastMessageAt:   c.LastMessageAt,
	}
}

// NewSchemaConversation creates a database entity from domain model
func NewSchemaConversation(c *chat.Conversation) *Conversation {
	return &Conversation{
		ID:              c.ID,
		ParticipantLow:  c.ParticipantLow,
		ParticipantHigh: c.ParticipantHigh,
		CreatedAt:       c.CreatedAt,
		LastMessageAt:   c.LastMessageAt,
	}
}

// EtoD converts database entity to domain model
func (m *Message) EtoD() *chat.Message {
	return &chat.Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		SentAt:         m.SentAt,
		ReadAt:         m.ReadAt,
	}
}

// NewSchemaMessage creates a database entity from domain model
func NewSchemaMessage(m *chat.Message) *Message {
	return &Message{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Body:           m.Body,
		SentAt:         m.SentAt,
		ReadAt:         m.ReadAt,
	}
}
