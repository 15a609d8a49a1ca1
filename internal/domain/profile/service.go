package profile

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// Service exposes profile reads and the upsert used by the linking step.
type Service interface {
	Get(ctx context.Context, subject string) (*Profile, error)
	Update(ctx context.Context, subject string, update UpdateParams) (*Profile, error)
}

// UpdateParams carries the mutable profile fields. Nil pointers leave the
// current value untouched.
type UpdateParams struct {
	PhotoURL             *string
	Bio                  *string
	CityID               *uint
	NotificationsEnabled *bool
	ParticipantID        *string
}

type service struct {
	repo Repository
	log  zerolog.Logger
}

// NewService constructs the profile service.
func NewService(repo Repository, log zerolog.Logger) Service {
	return &service{
		repo: repo,
		log:  log.With().Str("component", "profile-service").Logger(),
	}
}

func (s *service) Get(ctx context.Context, subject string) (*Profile, error) {
	return s.repo.GetBySubject(ctx, subject)
}

func (s *service) Update(ctx context.Context, subject string, update UpdateParams) (*Profile, error) {
	current, err := s.repo.GetBySubject(ctx, subject)
	if err != nil {
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			return nil, err
		}
		current = &Profile{Subject: subject, NotificationsEnabled: true}
	}

	if update.PhotoURL != nil {
		current.PhotoURL = update.PhotoURL
	}
	if update.Bio != nil {
		current.Bio = update.Bio
	}
	if update.CityID != nil {
		current.CityID = update.CityID
	}
	if update.NotificationsEnabled != nil {
		current.NotificationsEnabled = *update.NotificationsEnabled
	}
	if update.ParticipantID != nil {
		raw := strings.TrimSpace(*update.ParticipantID)
		if raw == "" {
			current.ParticipantID = nil
		} else {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, platformerrors.NewError(
					ctx,
					platformerrors.LayerDomain,
					platformerrors.ErrorTypeValidation,
					"participant id is not a valid uuid",
					err,
					"profile-bad-participant-id",
				)
			}
			current.ParticipantID = &id
		}
	}

	if err := s.repo.Upsert(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}
