package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// MessageRepository persists conversation messages.
type MessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository builds a message repository.
func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Append inserts the message and advances the conversation's last_message_at
// in one transaction. The conversation row is re-read inside the transaction
// and the sender's membership re-checked, so a stale caller cannot write into
// a conversation it does not belong to.
func (r *MessageRepository) Append(ctx context.Context, msg *domain.Message) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var conv entities.Conversation
		if err := tx.Where("id = ?", msg.ConversationID).First(&conv).Error; err != nil {
			return err
		}

		if conv.ParticipantLow != msg.SenderID && conv.ParticipantHigh != msg.SenderID {
			return fmt.Errorf("sender %s is not a participant", msg.SenderID)
		}

		if err := tx.Create(entities.NewSchemaMessage(msg)).Error; err != nil {
			return err
		}

		return tx.Model(&entities.Conversation{}).
			Where("id = ?", msg.ConversationID).
			Update("last_message_at", msg.SentAt).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("conversation not found: %s", msg.ConversationID),
				nil,
				"message-append-conversation-missing",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to append message",
			err,
			"message-append-error",
		)
	}

	return nil
}

// ListByConversation returns up to limit messages of a conversation, newest
// first.
func (r *MessageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID, limit int) ([]domain.Message, error) {
	if limit <= 0 || limit > domain.MaxMessagePage {
		limit = domain.MaxMessagePage
	}

	var rows []entities.Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("sent_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list messages",
			err,
			"message-list-error",
		)
	}

	result := make([]domain.Message, len(rows))
	for i := range rows {
		result[i] = *rows[i].EtoD()
	}
	return result, nil
}
