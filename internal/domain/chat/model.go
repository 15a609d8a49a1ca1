package chat

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// Conversation is a one-to-one thread between two participants. The pair is
// stored in canonical order: ParticipantLow sorts before ParticipantHigh by
// UUID byte order, so (A,B) and (B,A) always resolve to the same row.
type Conversation struct {
	ID              uuid.UUID
	ParticipantLow  uuid.UUID
	ParticipantHigh uuid.UUID
	CreatedAt       time.Time
	LastMessageAt   *time.Time
}

// NewConversation builds a conversation for the given pair, normalizing the
// participant order.
func NewConversation(a, b uuid.UUID) *Conversation {
	low, high := CanonicalPair(a, b)
	return &Conversation{
		ID:              uuid.New(),
		ParticipantLow:  low,
		ParticipantHigh: high,
	}
}

// CanonicalPair orders two participant IDs by UUID byte order.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}
	return b, a
}

// HasParticipant reports whether the given participant belongs to the
// conversation.
func (c *Conversation) HasParticipant(id uuid.UUID) bool {
	return c.ParticipantLow == id || c.ParticipantHigh == id
}

// Peer returns the other participant of the conversation.
func (c *Conversation) Peer(id uuid.UUID) uuid.UUID {
	if c.ParticipantLow == id {
		return c.ParticipantHigh
	}
	return c.ParticipantLow
}

// Message is an immutable entry in a conversation. ReadAt is persisted but
// never written by any current operation.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
	SentAt         time.Time
	ReadAt         *time.Time
}
