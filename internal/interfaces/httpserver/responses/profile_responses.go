package responses

import (
	"time"

	"github.com/gustavogago/Produto-de-software/internal/domain/notification"
	"github.com/gustavogago/Produto-de-software/internal/domain/profile"
)

// ProfilePayload is returned to clients.
type ProfilePayload struct {
	Subject              string  `json:"subject"`
	PhotoURL             *string `json:"photo_url,omitempty"`
	Bio                  *string `json:"bio,omitempty"`
	CityID               *uint   `json:"city_id,omitempty"`
	NotificationsEnabled bool    `json:"notifications_enabled"`
	ParticipantID        *string `json:"participant_id,omitempty"`
}

// NotificationPayload is returned to clients.
type NotificationPayload struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	ReferenceID string         `json:"reference_id,omitempty"`
	Message     string         `json:"message"`
	Payload     map[string]any `json:"payload,omitempty"`
	IsRead      bool           `json:"is_read"`
	CreatedAt   time.Time      `json:"created_at"`
}

// NotificationListPayload wraps a notification listing.
type NotificationListPayload struct {
	Data []NotificationPayload `json:"data"`
}

// FromProfile maps the domain profile to DTO.
func FromProfile(p *profile.Profile) ProfilePayload {
	payload := ProfilePayload{
		Subject:              p.Subject,
		PhotoURL:             p.PhotoURL,
		Bio:                  p.Bio,
		CityID:               p.CityID,
		NotificationsEnabled: p.NotificationsEnabled,
	}
	if p.ParticipantID != nil {
		id := p.ParticipantID.String()
		payload.ParticipantID = &id
	}
	return payload
}

// FromNotifications maps a notification listing to DTO.
func FromNotifications(items []*notification.Notification) NotificationListPayload {
	data := make([]NotificationPayload, len(items))
	for i, n := range items {
		data[i] = NotificationPayload{
			ID:          n.ID.String(),
			Type:        string(n.Type),
			ReferenceID: n.ReferenceID,
			Message:     n.Message,
			Payload:     n.Payload,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt,
		}
	}
	return NotificationListPayload{Data: data}
}
