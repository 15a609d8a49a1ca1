package catalog

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// CityRepository lists the known cities.
type CityRepository struct {
	db *gorm.DB
}

// NewCityRepository builds a city repository.
func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

// List returns all cities ordered by state and name.
func (r *CityRepository) List(ctx context.Context) ([]*domain.City, error) {
	var rows []entities.City
	if err := r.db.WithContext(ctx).Order("state ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list cities",
			err,
			"city-list-error",
		)
	}

	result := make([]*domain.City, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}
