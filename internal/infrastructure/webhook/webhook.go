package webhook

import (
	"context"
	"encoding/json"
)

// Service delivers notifications to the configured webhook endpoint.
type Service interface {
	// Deliver posts the notification payload. A nil error means the endpoint
	// acknowledged the delivery.
	Deliver(ctx context.Context, delivery Delivery) error
}

// Delivery is the structure sent to the webhook URL.
type Delivery struct {
	NotificationID string          `json:"notification_id"`
	RecipientID    string          `json:"recipient_id"`
	Event          string          `json:"event"`
	Message        string          `json:"message"`
	Payload        json.RawMessage `json:"payload,omitempty"`
}
