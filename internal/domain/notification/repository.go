package notification

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists notifications. Rows are created queued and picked up by
// the dispatch workers.
type Repository interface {
	Create(ctx context.Context, n *Notification) error
	ListByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*Notification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}
