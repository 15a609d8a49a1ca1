package entities

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/gustavogago/Produto-de-software/internal/domain/notification"
)

// Notification represents the database schema for notifications. Rows start
// queued and are driven through the delivery lifecycle by the dispatch
// workers.
type Notification struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey"`
	RecipientID    uuid.UUID      `gorm:"type:uuid;index:idx_notification_recipient;not null"`
	Type           string         `gorm:"type:varchar(20);not null"`
	ReferenceID    string         `gorm:"type:varchar(64)"`
	Message        string         `gorm:"type:text;not null"`
	Payload        datatypes.JSON `gorm:"type:jsonb"`
	IsRead         bool           `gorm:"not null;default:false"`
	DeliveryStatus string         `gorm:"type:varchar(20);index:idx_notification_delivery;not null;default:'queued'"`
	DeliveryError  *string        `gorm:"type:text"`
	DeliveredAt    *time.Time     `gorm:"type:timestamptz"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Notification.
func (Notification) TableName() string {
	return "notifications"
}

// EtoD converts database entity to domain model
func (n *Notification) EtoD() *notification.Notification {
	var payload map[string]any
	if len(n.Payload) > 0 {
		_ = json.Unmarshal(n.Payload, &payload)
	}

	return &notification.Notification{
		ID:             n.ID,
		RecipientID:    n.RecipientID,
		Type:           notification.Type(n.Type),
		ReferenceID:    n.ReferenceID,
		Message:        n.Message,
		Payload:        payload,
		IsRead:         n.IsRead,
		DeliveryStatus: notification.DeliveryStatus(n.DeliveryStatus),
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

// NewSchemaNotification creates a database entity from domain model
func NewSchemaNotification(n *notification.Notification) *Notification {
	var payload datatypes.JSON
	if n.Payload != nil {
		raw, err := json.Marshal(n.Payload)
		if err == nil {
			payload = raw
		}
	}

	return &Notification{
		ID:             n.ID,
		RecipientID:    n.RecipientID,
		Type:           string(n.Type),
		ReferenceID:    n.ReferenceID,
		Message:        n.Message,
		Payload:        payload,
		IsRead:         n.IsRead,
		DeliveryStatus: string(n.DeliveryStatus),
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}
