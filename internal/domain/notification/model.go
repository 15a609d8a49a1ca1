package notification

import (
	"time"

	"github.com/google/uuid"
)

// Type classifies what a notification is about.
type Type string

const (
	TypeChat    Type = "chat"
	TypeProfile Type = "profile"
	TypeItem    Type = "item"
	TypeSystem  Type = "system"
)

// DeliveryStatus tracks the webhook dispatch lifecycle.
type DeliveryStatus string

const (
	DeliveryQueued     DeliveryStatus = "queued"
	DeliveryDelivering DeliveryStatus = "delivering"
	DeliveryDelivered  DeliveryStatus = "delivered"
	DeliveryFailed     DeliveryStatus = "failed"
)

// Notification is a message for a participant, dispatched asynchronously to
// the configured webhook and readable through the API.
type Notification struct {
	ID             uuid.UUID
	RecipientID    uuid.UUID
	Type           Type
	ReferenceID    string
	Message        string
	Payload        map[string]any
	IsRead         bool
	DeliveryStatus DeliveryStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
