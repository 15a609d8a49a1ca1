package profile

import "context"

// Repository persists profiles keyed by the authenticated subject.
type Repository interface {
	GetBySubject(ctx context.Context, subject string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
}
