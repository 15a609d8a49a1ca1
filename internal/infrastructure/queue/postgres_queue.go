package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
)

// PostgresQueue implements TaskQueue using the notifications table.
type PostgresQueue struct {
	db  *gorm.DB
	log zerolog.Logger
}

// NewPostgresQueue creates a new PostgreSQL-backed dispatch queue.
func NewPostgresQueue(db *gorm.DB, log zerolog.Logger) *PostgresQueue {
	return &PostgresQueue{
		db:  db,
		log: log.With().Str("component", "postgres-queue").Logger(),
	}
}

// Dequeue fetches the next queued notification using FOR UPDATE SKIP LOCKED.
func (q *PostgresQueue) Dequeue(ctx context.Context) (*Task, error) {
	var entity entities.Notification

	err := q.db.WithContext(ctx).
		Raw("SELECT * FROM notifications WHERE delivery_status = ? ORDER BY created_at ASC LIMIT 1 FOR UPDATE SKIP LOCKED", "queued").
		Scan(&entity).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue notification: %w", err)
	}

	if entity.ID == uuid.Nil {
		return nil, nil // No notifications queued
	}

	return &Task{
		NotificationID: entity.ID.String(),
		RecipientID:    entity.RecipientID.String(),
		Type:           entity.Type,
		Message:        entity.Message,
		Payload:        entity.Payload,
		QueuedAt:       entity.CreatedAt,
	}, nil
}

// MarkDelivering updates the notification delivery status to delivering.
func (q *PostgresQueue) MarkDelivering(ctx context.Context, notificationID string) error {
	result := q.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]interface{}{
			"delivery_status": "delivering",
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("mark delivering: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("notification not found: %s", notificationID)
	}

	return nil
}

// MarkDelivered updates the notification delivery status to delivered.
func (q *PostgresQueue) MarkDelivered(ctx context.Context, notificationID string) error {
	now := time.Now()
	result := q.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]interface{}{
			"delivery_status": "delivered",
			"delivered_at":    now,
			"updated_at":      now,
		})

	if result.Error != nil {
		return fmt.Errorf("mark delivered: %w", result.Error)
	}

	return nil
}

// MarkFailed updates the notification delivery status to failed.
func (q *PostgresQueue) MarkFailed(ctx context.Context, notificationID string, taskErr error) error {
	message := taskErr.Error()
	result := q.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("id = ?", notificationID).
		Updates(map[string]interface{}{
			"delivery_status": "failed",
			"delivery_error":  message,
			"updated_at":      time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("mark failed: %w", result.Error)
	}

	return nil
}

// GetQueueDepth returns the number of queued notifications.
func (q *PostgresQueue) GetQueueDepth(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.WithContext(ctx).
		Model(&entities.Notification{}).
		Where("delivery_status = ?", "queued").
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("get queue depth: %w", err)
	}

	return count, nil
}
