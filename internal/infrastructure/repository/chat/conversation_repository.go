package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/chat"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// ConversationRepository persists one-to-one conversations.
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository builds a conversation repository.
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// FindOrCreate inserts the conversation unless a row for the same canonical
// pair already exists. The insert uses ON CONFLICT DO NOTHING against the
// unique pair index, then reads back the winning row, so concurrent first
// contact from both sides converges on one conversation.
func (r *ConversationRepository) FindOrCreate(ctx context.Context, conv *domain.Conversation) (*domain.Conversation, error) {
	var winner entities.Conversation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entity := entities.NewSchemaConversation(conv)

		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "participant_low"}, {Name: "participant_high"}},
			DoNothing: true,
		}).Create(entity)
		if res.Error != nil {
			return res.Error
		}

		return tx.
			Where("participant_low = ? AND participant_high = ?", conv.ParticipantLow, conv.ParticipantHigh).
			First(&winner).Error
	})
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find or create conversation",
			err,
			"conversation-find-or-create-error",
		)
	}

	return winner.EtoD(), nil
}

// FindByID fetches a conversation by its ID.
func (r *ConversationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	var entity entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("conversation not found: %s", id),
				nil,
				"conversation-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch conversation",
			err,
			"conversation-fetch-error",
		)
	}

	return entity.EtoD(), nil
}
