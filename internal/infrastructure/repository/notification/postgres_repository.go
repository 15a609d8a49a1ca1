package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/notification"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// PostgresRepository persists notifications.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository builds a notification repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts the notification record.
func (r *PostgresRepository) Create(ctx context.Context, n *domain.Notification) error {
	entity := entities.NewSchemaNotification(n)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create notification",
			err,
			"notification-create-error",
		)
	}

	n.CreatedAt = entity.CreatedAt
	n.UpdatedAt = entity.UpdatedAt
	return nil
}

// ListByRecipient returns the newest notifications for a recipient.
func (r *PostgresRepository) ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*domain.Notification, error) {
	query := r.db.WithContext(ctx).
		Where("recipient_id = ?", recipientID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []entities.Notification
	if err := query.Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list notifications",
			err,
			"notification-list-error",
		)
	}

	result := make([]*domain.Notification, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// FindByID fetches a notification by its ID.
func (r *PostgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	var entity entities.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("notification not found: %s", id),
				nil,
				"notification-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch notification",
			err,
			"notification-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

// MarkRead marks a notification as read.
func (r *PostgresRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to mark notification read",
			result.Error,
			"notification-mark-read-error",
		)
	}
	if result.RowsAffected == 0 {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeNotFound,
			fmt.Sprintf("notification not found: %s", id),
			nil,
			"notification-mark-read-missing",
		)
	}
	return nil
}
