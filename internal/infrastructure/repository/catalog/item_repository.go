package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/infrastructure/database/entities"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// ItemRepository persists items and their photo slots.
type ItemRepository struct {
	db *gorm.DB
}

// NewItemRepository builds an item repository.
func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// Create inserts the item record.
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	entity := entities.NewSchemaItem(item)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to create item",
			err,
			"item-create-error",
		)
	}

	item.CreatedAt = entity.CreatedAt
	item.UpdatedAt = entity.UpdatedAt
	return nil
}

// FindByID fetches an item with its photos.
func (r *ItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Item, error) {
	var entity entities.Item
	if err := r.db.WithContext(ctx).
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("item not found: %s", id),
				nil,
				"item-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch item",
			err,
			"item-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

// FindByFilter fetches items matching the filter criteria.
func (r *ItemRepository) FindByFilter(ctx context.Context, filter domain.ItemFilter, pagination *domain.Pagination) ([]*domain.Item, error) {
	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Item{}), filter)

	if pagination != nil {
		offset := (pagination.Page - 1) * pagination.PageSize
		query = query.Offset(offset).Limit(pagination.PageSize)
	}

	var rows []entities.Item
	if err := query.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to find items",
			err,
			"item-find-by-filter-error",
		)
	}

	result := make([]*domain.Item, len(rows))
	for i := range rows {
		result[i] = rows[i].EtoD()
	}
	return result, nil
}

// Count returns the count of items matching the filter.
func (r *ItemRepository) Count(ctx context.Context, filter domain.ItemFilter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&entities.Item{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count items",
			err,
			"item-count-error",
		)
	}
	return count, nil
}

// Update updates an item record.
func (r *ItemRepository) Update(ctx context.Context, item *domain.Item) error {
	entity := entities.NewSchemaItem(item)
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to update item",
			err,
			"item-update-error",
		)
	}
	return nil
}

// Delete removes an item and its photo slots.
func (r *ItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", id).Delete(&entities.ItemPhoto{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Item{}, "id = ?", id).Error
	})
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete item",
			err,
			"item-delete-error",
		)
	}
	return nil
}

// AddPhoto inserts a photo slot.
func (r *ItemRepository) AddPhoto(ctx context.Context, photo *domain.ItemPhoto) error {
	entity := entities.NewSchemaItemPhoto(photo)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to add photo",
			err,
			"item-photo-add-error",
		)
	}
	photo.CreatedAt = entity.CreatedAt
	return nil
}

// FindPhotoByID fetches a photo slot.
func (r *ItemRepository) FindPhotoByID(ctx context.Context, photoID uuid.UUID) (*domain.ItemPhoto, error) {
	var entity entities.ItemPhoto
	if err := r.db.WithContext(ctx).
		Where("id = ?", photoID).
		First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound,
				fmt.Sprintf("photo not found: %s", photoID),
				nil,
				"item-photo-not-found",
			)
		}
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to fetch photo",
			err,
			"item-photo-fetch-error",
		)
	}
	return entity.EtoD(), nil
}

// CountPhotos counts the photo slots used by an item.
func (r *ItemRepository) CountPhotos(ctx context.Context, itemID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ItemPhoto{}).
		Where("item_id = ?", itemID).
		Count(&count).Error; err != nil {
		return 0, platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to count photos",
			err,
			"item-photo-count-error",
		)
	}
	return count, nil
}

// DeletePhoto removes a photo slot.
func (r *ItemRepository) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entities.ItemPhoto{}, "id = ?", photoID).Error; err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerRepository,
			platformerrors.ErrorTypeDatabaseError,
			"failed to delete photo",
			err,
			"item-photo-delete-error",
		)
	}
	return nil
}

func (r *ItemRepository) applyFilter(query *gorm.DB, filter domain.ItemFilter) *gorm.DB {
	if filter.OwnerSubject != "" {
		query = query.Where("owner_subject = ?", filter.OwnerSubject)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.ListingState != nil {
		query = query.Where("listing_state = ?", string(*filter.ListingState))
	}
	return query
}
