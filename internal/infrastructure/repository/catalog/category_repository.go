package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// CategoryRepository persists item categories.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository builds a category repository.
func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// List returns all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	var rows []entities.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to list categories",
			err,
			"category-list-error",
		)
	}

	result := make([]*domain.Category, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// Create inserts the category record. Duplicate names or slugs surface as
// CONFLICT.
func (r *CategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	entity := entities.NewSchemaCategory(category)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		if isUniqueViolation(err) {
			return platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeConflict,
				fmt.Sprintf("category already exists: %s", category.Name),
				err,
				"category-duplicate",
			)
		}
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create category",
			err,
			"category-create-error",
		)
	}

	category.ID = entity.ID
	category.CreatedAt = entity.CreatedAt
	return nil
}

// FindBySlug fetches a category by its slug.
func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	var entity entities.Category
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("category not found: %s", slug),
				nil,
				"category-slug-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch category",
			err,
			"category-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

// FindByID fetches a category by its ID.
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*domain.Category, error) {
	var entity entities.Category
	if err := r.db.WithContext(ctx).First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("category not found: %d", id),
				nil,
				"category-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch category",
			err,
			"category-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
