package queue

import (
	"context"
	"time"
)

// Task represents a queued notification delivery.
type Task struct {
	NotificationID string
	RecipientID    string
	Type           string
	Message        string
	Payload        []byte
	QueuedAt       time.Time
}

// TaskQueue defines the interface for the notification dispatch queue.
type TaskQueue interface {
	// Dequeue fetches the next queued notification using SELECT FOR UPDATE SKIP LOCKED
	Dequeue(ctx context.Context) (*Task, error)

	// MarkDelivering updates delivery status to delivering
	MarkDelivering(ctx context.Context, notificationID string) error

	// MarkDelivered updates delivery status to delivered
	MarkDelivered(ctx context.Context, notificationID string) error

	// MarkFailed updates delivery status to failed
	MarkFailed(ctx context.Context, notificationID string, err error) error

	// GetQueueDepth returns the number of queued notifications
	GetQueueDepth(ctx context.Context) (int64, error)
}
