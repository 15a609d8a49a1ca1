package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile holds per-user marketplace settings. ParticipantID is the link to
// the messaging identity; an unlinked profile cannot use chat.
type Profile struct {
	Subject              string
	PhotoURL             *string
	Bio                  *string
	CityID               *uint
	NotificationsEnabled bool
	ParticipantID        *uuid.UUID
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
