package profile

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/profile"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// PostgresRepository persists user profiles.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository builds a profile repository.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetBySubject fetches a profile by the authenticated subject.
func (r *PostgresRepository) GetBySubject(ctx context.Context, subject string) (*domain.Profile, error) {
	var entity entities.UserProfile
	if err := r.db.WithContext(ctx).
		Where("subject = ?", subject).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("profile not found: %s", subject),
				nil,
				"profile-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch profile",
			err,
			"profile-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

// Upsert inserts the profile or updates the existing row for the subject.
func (r *PostgresRepository) Upsert(ctx context.Context, p *domain.Profile) error {
	entity := entities.NewSchemaUserProfile(p)
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "subject"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"photo_url", "bio", "city_id", "notifications_enabled", "participant_id", "updated_at",
			}),
		}).
		Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to upsert profile",
			err,
			"profile-upsert-error",
		)
	}

	p.CreatedAt = entity.CreatedAt
	p.UpdatedAt = entity.UpdatedAt
	return nil
}
