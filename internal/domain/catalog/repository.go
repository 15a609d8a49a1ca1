package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository persists items and their photo slots.
type ItemRepository interface {
	Create(ctx context.Context, item *Item) error
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByFilter(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*Item, error)
	Count(ctx context.Context, filter ItemFilter) (int64, error)
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, id uuid.UUID) error

	AddPhoto(ctx context.Context, photo *ItemPhoto) error
	FindPhotoByID(ctx context.Context, photoID uuid.UUID) (*ItemPhoto, error)
	CountPhotos(ctx context.Context, itemID uuid.UUID) (int64, error)
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*Category, error)
	Create(ctx context.Context, category *Category) error
	FindBySlug(ctx context.Context, slug string) (*Category, error)
	FindByID(ctx context.Context, id uint) (*Category, error)
}

// CityRepository lists the known cities.
type CityRepository interface {
	List(ctx context.Context) ([]*City, error)
}

// MediaClient is the boundary to the external media service holding photo
// blobs.
type MediaClient interface {
	DeleteObject(ctx context.Context, url string) error
}
