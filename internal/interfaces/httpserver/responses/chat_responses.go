package responses

import (
	"time"

	"github.com/gustavogago/Produto-de-software/internal/domain/chat"
)

// ConversationPayload is returned to clients. Participants are exposed as a
// plain pair; the canonical storage order carries no meaning for callers.
type ConversationPayload struct {
	ID            string     `json:"id"`
	ParticipantA  string     `json:"participant_a"`
	ParticipantB  string     `json:"participant_b"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
}

// MessagePayload is returned to clients.
type MessagePayload struct {
	ID             string     `json:"id"`
	ConversationID string     `json:"conversation_id"`
	SenderID       string     `json:"sender_id"`
	Body           string     `json:"body"`
	SentAt         time.Time  `json:"sent_at"`
	ReadAt         *time.Time `json:"read_at,omitempty"`
}

// MessageListPayload wraps a message page for consistent responses.
type MessageListPayload struct {
	Data []MessagePayload `json:"data"`
}

// FromConversation maps the domain conversation to DTO.
func FromConversation(c *chat.Conversation) ConversationPayload {
	return ConversationPayload{
		ID:            c.ID.String(),
		ParticipantA:  c.ParticipantLow.String(),
		ParticipantB:  c.ParticipantHigh.String(),
		CreatedAt:     c.CreatedAt,
		LastMessageAt: c.LastMessageAt,
	}
}

// FromMessage maps the domain message to DTO.
func FromMessage(m *chat.Message) MessagePayload {
	return MessagePayload{
		ID:             m.ID.String(),
		ConversationID: m.ConversationID.String(),
		SenderID:       m.SenderID.String(),
		Body:           m.Body,
		SentAt:         m.SentAt,
		ReadAt:         m.ReadAt,
	}
}

// FromMessages maps a message page to DTO, preserving order.
func FromMessages(msgs []chat.Message) MessageListPayload {
	data := make([]MessagePayload, len(msgs))
	for i := range msgs {
		data[i] = FromMessage(&msgs[i])
	}
	return MessageListPayload{Data: data}
}
