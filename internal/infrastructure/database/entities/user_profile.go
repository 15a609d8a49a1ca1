package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/gustavogago/Produto-de-software/internal/domain/profile"
)

// UserProfile represents the database schema for user profiles. ParticipantID
// is nullable until the user completes the identity linking step.
type UserProfile struct {
	ID                   uint       `gorm:"primaryKey"`
	Subject              string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PhotoURL             *string    `gorm:"type:varchar(512)"`
	Bio                  *string    `gorm:"type:text"`
	CityID               *uint      `gorm:"index:idx_user_profile_city"`
	NotificationsEnabled bool       `gorm:"not null;default:true"`
	ParticipantID        *uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for UserProfile.
func (UserProfile) TableName() string {
	return "user_profiles"
}

// EtoD converts database entity to domain model
func (p *UserProfile) EtoD() *profile.Profile {
	return &profile.Profile{
		Subject:              p.Subject,
		PhotoURL:             p.PhotoURL,
		Bio:                  p.Bio,
		CityID:               p.CityID,
		NotificationsEnabled: p.NotificationsEnabled,
		ParticipantID:        p.ParticipantID,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

// NewSchemaUserProfile creates a database entity from domain model
func NewSchemaUserProfile(p *profile.Profile) *UserProfile {
	return &UserProfile{
		Subject:              p.Subject,
		PhotoURL:             p.PhotoURL,
		Bio:                  p.Bio,
		CityID:               p.CityID,
		NotificationsEnabled: p.NotificationsEnabled,
		ParticipantID:        p.ParticipantID,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}
