package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// Service exposes the catalog operations. All item operations are scoped to
// the owning subject.
type Service interface {
	ListItems(ctx context.Context, subject string, filter ItemFilter, pagination *Pagination) ([]*Item, int64, error)
	CreateItem(ctx context.Context, subject string, item *Item) (*Item, error)
	GetItem(ctx context.Context, subject string, itemID string) (*Item, error)
	UpdateItem(ctx context.Context, subject string, itemID string, update *Item) (*Item, error)
	DeleteItem(ctx context.Context, subject string, itemID string) error

	AddPhoto(ctx context.Context, subject string, itemID string, url string, position int) (*ItemPhoto, error)
	DeletePhoto(ctx context.Context, subject string, photoID string) error

	ListCategories(ctx context.Context) ([]*Category, error)
	CreateCategory(ctx context.Context, name string) (*Category, error)
	ListCities(ctx context.Context) ([]*City, error)
}

type service struct {
	items      ItemRepository
	categories CategoryRepository
	cities     CityRepository
	media      MediaClient
	maxPhotos  int
	log        zerolog.Logger
}

// NewService constructs the catalog service.
func NewService(
	items ItemRepository,
	categories CategoryRepository,
	cities CityRepository,
	media MediaClient,
	maxPhotos int,
	log zerolog.Logger,
) Service {
	if maxPhotos <= 0 {
		maxPhotos = 6
	}
	return &service{
		items:      items,
		categories: categories,
		cities:     cities,
		media:      media,
		maxPhotos:  maxPhotos,
		log:        log.With().Str("component", "catalog-service").Logger(),
	}
}

func (s *service) ListItems(ctx context.Context, subject string, filter ItemFilter, pagination *Pagination) ([]*Item, int64, error) {
	filter.OwnerSubject = subject

	if filter.CategorySlug != nil && filter.CategoryID == nil {
		category, err := s.categories.FindBySlug(ctx, *filter.CategorySlug)
		if err != nil {
			return nil, 0, err
		}
		filter.CategoryID = &category.ID
	}

	if pagination != nil {
		pagination.Normalize()
	}

	items, err := s.items.FindByFilter(ctx, filter, pagination)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.items.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *service) CreateItem(ctx context.Context, subject string, item *Item) (*Item, error) {
	item.ID = uuid.New()
	item.OwnerSubject = subject
	item.Title = strings.TrimSpace(item.Title)

	if item.Title == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"item title must not be empty",
			nil,
			"catalog-item-empty-title",
		)
	}
	if !item.Condition.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"item condition must be new or used",
			nil,
			"catalog-item-bad-condition",
		)
	}
	if item.ListingState == "" {
		item.ListingState = ListingStateActive
	}
	if !item.ListingState.Valid() {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"item listing state must be active or inactive",
			nil,
			"catalog-item-bad-state",
		)
	}

	if _, err := s.categories.FindByID(ctx, item.CategoryID); err != nil {
		return nil, err
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, subject string, itemID string) (*Item, error) {
	return s.ownedItem(ctx, subject, itemID)
}

func (s *service) UpdateItem(ctx context.Context, subject string, itemID string, update *Item) (*Item, error) {
	item, err := s.ownedItem(ctx, subject, itemID)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(update.Title); title != "" {
		item.Title = title
	}
	if update.Description != "" {
		item.Description = update.Description
	}
	if update.CategoryID != 0 {
		if _, err := s.categories.FindByID(ctx, update.CategoryID); err != nil {
			return nil, err
		}
		item.CategoryID = update.CategoryID
	}
	if update.CityID != nil {
		item.CityID = update.CityID
	}
	if update.Condition != "" {
		if !update.Condition.Valid() {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation,
				"item condition must be new or used",
				nil,
				"catalog-item-bad-condition",
			)
		}
		item.Condition = update.Condition
	}
	if update.ListingState != "" {
		if !update.ListingState.Valid() {
			return nil, platformerrors.NewError(
				ctx,
				platformerrors.LayerDomain,
				platformerrors.ErrorTypeValidation,
				"item listing state must be active or inactive",
				nil,
				"catalog-item-bad-state",
			)
		}
		item.ListingState = update.ListingState
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) DeleteItem(ctx context.Context, subject string, itemID string) error {
	item, err := s.ownedItem(ctx, subject, itemID)
	if err != nil {
		return err
	}

	if err := s.items.Delete(ctx, item.ID); err != nil {
		return err
	}

	// Best effort blob cleanup.
	for _, photo := range item.Photos {
		if err := s.media.DeleteObject(ctx, photo.URL); err != nil {
			s.log.Warn().Err(err).Str("photo_url", photo.URL).Msg("delete photo blob")
		}
	}
	return nil
}

func (s *service) AddPhoto(ctx context.Context, subject string, itemID string, url string, position int) (*ItemPhoto, error) {
	item, err := s.ownedItem(ctx, subject, itemID)
	if err != nil {
		return nil, err
	}

	count, err := s.items.CountPhotos(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if count >= int64(s.maxPhotos) {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeConflict,
			"item already has the maximum number of photos",
			nil,
			"catalog-photo-slots-full",
		)
	}

	photo := &ItemPhoto{
		ID:       uuid.New(),
		ItemID:   item.ID,
		URL:      strings.TrimSpace(url),
		Position: position,
	}
	if photo.URL == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"photo url must not be empty",
			nil,
			"catalog-photo-empty-url",
		)
	}

	if err := s.items.AddPhoto(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

func (s *service) DeletePhoto(ctx context.Context, subject string, photoID string) error {
	id, err := uuid.Parse(strings.TrimSpace(photoID))
	if err != nil {
		return platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"photo not found",
			err,
			"catalog-photo-id-malformed",
		)
	}

	photo, err := s.items.FindPhotoByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.ownedItem(ctx, subject, photo.ItemID.String()); err != nil {
		return err
	}

	if err := s.items.DeletePhoto(ctx, photo.ID); err != nil {
		return err
	}

	if err := s.media.DeleteObject(ctx, photo.URL); err != nil {
		s.log.Warn().Err(err).Str("photo_url", photo.URL).Msg("delete photo blob")
	}
	return nil
}

func (s *service) ListCategories(ctx context.Context) ([]*Category, error) {
	return s.categories.List(ctx)
}

func (s *service) CreateCategory(ctx context.Context, name string) (*Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeValidation,
			"category name must not be empty",
			nil,
			"catalog-category-empty-name",
		)
	}

	category := &Category{
		Name: name,
		Slug: Slugify(name),
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) ListCities(ctx context.Context) ([]*City, error) {
	return s.cities.List(ctx)
}

// ownedItem loads an item and enforces that the subject owns it. Foreign
// items are reported as FORBIDDEN, malformed IDs as NOT_FOUND.
func (s *service) ownedItem(ctx context.Context, subject string, itemID string) (*Item, error) {
	id, err := uuid.Parse(strings.TrimSpace(itemID))
	if err != nil {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeNotFound,
			"item not found",
			err,
			"catalog-item-id-malformed",
		)
	}

	item, err := s.items.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if item.OwnerSubject != subject {
		return nil, platformerrors.NewError(
			ctx,
			platformerrors.LayerDomain,
			platformerrors.ErrorTypeForbidden,
			"item belongs to another user",
			nil,
			"catalog-item-not-owner",
		)
	}
	return item, nil
}
