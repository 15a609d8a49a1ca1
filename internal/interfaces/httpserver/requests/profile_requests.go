package requests

// UpdateProfileRequest upserts the caller's profile. Nil fields are left
// untouched.
type UpdateProfileRequest struct {
	PhotoURL             *string `json:"photo_url"`
	Bio                  *string `json:"bio"`
	CityID               *uint   `json:"city_id"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	ParticipantID        *string `json:"participant_id"`
}
