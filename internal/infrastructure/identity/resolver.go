package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// Resolver maps an authenticated subject to its messaging participant
// identity through the user profile. It fails closed: an unknown subject or a
// profile without a linked participant id never resolves.
type Resolver struct {
	db *gorm.DB
}

// NewResolver builds a profile-backed identity resolver.
func NewResolver(db *gorm.DB) *Resolver {
	return &Resolver{db: db}
}

// Resolve returns the participant id linked to the subject's profile.
func (r *Resolver) Resolve(ctx context.Context, subject string) (uuid.UUID, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return uuid.Nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeUnauthorized,
			"missing authenticated subject",
			nil,
			"identity-missing-subject",
		)
	}

	var profile entities.UserProfile
	err := r.db.WithContext(ctx).
		Select("participant_id").
		Where("subject = ?", subject).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return uuid.Nil, notLinkedError(ctx)
		}
		return uuid.Nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerInfrastructure,
			platformerrors.ErrorTypeDatabaseError,
			"failed to resolve participant identity",
			err,
			"identity-resolve-error",
		)
	}

	if profile.ParticipantID == nil || *profile.ParticipantID == uuid.Nil {
		return uuid.Nil, notLinkedError(ctx)
	}

	return *profile.ParticipantID, nil
}

func notLinkedError(ctx context.Context) *platformerrors.PlatformError {
	return platformerrors.NewError(
		ctx,
		platformerrors.LayerInfrastructure,
		platformerrors.ErrorTypeValidation,
		"participant identity not linked",
		nil,
		"identity-not-linked",
	)
}
