package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

type mockItemRepository struct {
	CreateFunc        func(ctx context.Context, item *Item) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*Item, error)
	FindByFilterFunc  func(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*Item, error)
	CountFunc         func(ctx context.Context, filter ItemFilter) (int64, error)
	UpdateFunc        func(ctx context.Context, item *Item) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	AddPhotoFunc      func(ctx context.Context, photo *ItemPhoto) error
	FindPhotoByIDFunc func(ctx context.Context, photoID uuid.UUID) (*ItemPhoto, error)
	CountPhotosFunc   func(ctx context.Context, itemID uuid.UUID) (int64, error)
	DeletePhotoFunc   func(ctx context.Context, photoID uuid.UUID) error
}

func (m *mockItemRepository) Create(ctx context.Context, item *Item) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) FindByFilter(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*Item, error) {
	if m.FindByFilterFunc != nil {
		return m.FindByFilterFunc(ctx, filter, pagination)
	}
	return nil, nil
}

func (m *mockItemRepository) Count(ctx context.Context, filter ItemFilter) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx, filter)
	}
	return 0, nil
}

func (m *mockItemRepository) Update(ctx context.Context, item *Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockItemRepository) AddPhoto(ctx context.Context, photo *ItemPhoto) error {
	if m.AddPhotoFunc != nil {
		return m.AddPhotoFunc(ctx, photo)
	}
	return nil
}

func (m *mockItemRepository) FindPhotoByID(ctx context.Context, photoID uuid.UUID) (*ItemPhoto, error) {
	if m.FindPhotoByIDFunc != nil {
		return m.FindPhotoByIDFunc(ctx, photoID)
	}
	return nil, nil
}

func (m *mockItemRepository) CountPhotos(ctx context.Context, itemID uuid.UUID) (int64, error) {
	if m.CountPhotosFunc != nil {
		return m.CountPhotosFunc(ctx, itemID)
	}
	return 0, nil
}

func (m *mockItemRepository) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	if m.DeletePhotoFunc != nil {
		return m.DeletePhotoFunc(ctx, photoID)
	}
	return nil
}

type mockCategoryRepository struct {
	ListFunc       func(ctx context.Context) ([]*Category, error)
	CreateFunc     func(ctx context.Context, category *Category) error
	FindBySlugFunc func(ctx context.Context, slug string) (*Category, error)
	FindByIDFunc   func(ctx context.Context, id uint) (*Category, error)
}

func (m *mockCategoryRepository) List(ctx context.Context) ([]*Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockCategoryRepository) Create(ctx context.Context, category *Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *mockCategoryRepository) FindBySlug(ctx context.Context, slug string) (*Category, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockCategoryRepository) FindByID(ctx context.Context, id uint) (*Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return &Category{ID: id, Name: "misc", Slug: "misc"}, nil
}

type mockCityRepository struct {
	ListFunc func(ctx context.Context) ([]*City, error)
}

func (m *mockCityRepository) List(ctx context.Context) ([]*City, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockMediaClient struct {
	DeleteObjectFunc func(ctx context.Context, url string) error
	deleted          []string
}

func (m *mockMediaClient) DeleteObject(ctx context.Context, url string) error {
	m.deleted = append(m.deleted, url)
	if m.DeleteObjectFunc != nil {
		return m.DeleteObjectFunc(ctx, url)
	}
	return nil
}

func newCatalogService(items ItemRepository, categories CategoryRepository, media MediaClient) Service {
	if categories == nil {
		categories = &mockCategoryRepository{}
	}
	if media == nil {
		media = &mockMediaClient{}
	}
	return NewService(items, categories, &mockCityRepository{}, media, 6, zerolog.Nop())
}

func TestCreateItemRejectsEmptyTitle(t *testing.T) {
	svc := newCatalogService(&mockItemRepository{}, nil, nil)

	_, err := svc.CreateItem(context.Background(), "alice", &Item{
		Title:      "   ",
		CategoryID: 1,
		Condition:  ConditionNew,
	})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateItemRejectsUnknownCondition(t *testing.T) {
	svc := newCatalogService(&mockItemRepository{}, nil, nil)

	_, err := svc.CreateItem(context.Background(), "alice", &Item{
		Title:      "Couch",
		CategoryID: 1,
		Condition:  Condition("pristine"),
	})
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateItemDefaultsToActive(t *testing.T) {
	svc := newCatalogService(&mockItemRepository{}, nil, nil)

	item, err := svc.CreateItem(context.Background(), "alice", &Item{
		Title:      "Couch",
		CategoryID: 1,
		Condition:  ConditionUsed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if item.ListingState != ListingStateActive {
		t.Errorf("expected active listing state, got %q", item.ListingState)
	}
	if item.OwnerSubject != "alice" {
		t.Errorf("expected owner to be set, got %q", item.OwnerSubject)
	}
}

func TestGetItemOwnedByAnotherUserIsForbidden(t *testing.T) {
	itemID := uuid.New()
	items := &mockItemRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*Item, error) {
			return &Item{ID: itemID, OwnerSubject: "bob", Title: "Couch"}, nil
		},
	}
	svc := newCatalogService(items, nil, nil)

	_, err := svc.GetItem(context.Background(), "alice", itemID.String())
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeForbidden) {
		t.Errorf("expected forbidden error, got %v", err)
	}
}

func TestGetItemMalformedIDIsNotFound(t *testing.T) {
	svc := newCatalogService(&mockItemRepository{}, nil, nil)

	_, err := svc.GetItem(context.Background(), "alice", "not-a-uuid")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestAddPhotoFullSlotsIsConflict(t *testing.T) {
	itemID := uuid.New()
	items := &mockItemRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*Item, error) {
			return &Item{ID: itemID, OwnerSubject: "alice"}, nil
		},
		CountPhotosFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 6, nil
		},
	}
	svc := newCatalogService(items, nil, nil)

	_, err := svc.AddPhoto(context.Background(), "alice", itemID.String(), "https://media/photo.jpg", 0)
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestAddPhotoBelowLimitSucceeds(t *testing.T) {
	itemID := uuid.New()
	items := &mockItemRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*Item, error) {
			return &Item{ID: itemID, OwnerSubject: "alice"}, nil
		},
		CountPhotosFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 5, nil
		},
	}
	svc := newCatalogService(items, nil, nil)

	photo, err := svc.AddPhoto(context.Background(), "alice", itemID.String(), "https://media/photo.jpg", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if photo.ItemID != itemID || photo.Position != 2 {
		t.Errorf("unexpected photo: %+v", photo)
	}
}

func TestDeleteItemCleansUpPhotoBlobs(t *testing.T) {
	itemID := uuid.New()
	items := &mockItemRepository{
		FindByIDFunc: func(ctx context.Context, id uuid.UUID) (*Item, error) {
			return &Item{
				ID:           itemID,
				OwnerSubject: "alice",
				Photos: []ItemPhoto{
					{ID: uuid.New(), ItemID: itemID, URL: "https://media/a.jpg"},
					{ID: uuid.New(), ItemID: itemID, URL: "https://media/b.jpg"},
				},
			}, nil
		},
	}
	media := &mockMediaClient{}
	svc := newCatalogService(items, nil, media)

	if err := svc.DeleteItem(context.Background(), "alice", itemID.String()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(media.deleted) != 2 {
		t.Errorf("expected 2 blob deletions, got %d", len(media.deleted))
	}
}

func TestCreateCategorySlugifiesName(t *testing.T) {
	var created *Category
	categories := &mockCategoryRepository{
		CreateFunc: func(ctx context.Context, category *Category) error {
			created = category
			return nil
		},
	}
	svc := newCatalogService(&mockItemRepository{}, categories, nil)

	_, err := svc.CreateCategory(context.Background(), "  Casa & Jardim  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.Slug != "casa-jardim" {
		t.Errorf("unexpected slug: %+v", created)
	}
}

func TestPaginationNormalizeClampsBounds(t *testing.T) {
	cases := []struct {
		name     string
		in       Pagination
		page     int
		pageSize int
	}{
		{"zero values", Pagination{}, 1, DefaultPageSize},
		{"negative page", Pagination{Page: -3, PageSize: 20}, 1, 20},
		{"oversized page size", Pagination{Page: 2, PageSize: 5000}, 2, MaxPageSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.Normalize()
			if tc.in.Page != tc.page || tc.in.PageSize != tc.pageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d", tc.in.Page, tc.in.PageSize, tc.page, tc.pageSize)
			}
		})
	}
}

func TestListItemsScopesToOwner(t *testing.T) {
	var seen ItemFilter
	items := &mockItemRepository{
		FindByFilterFunc: func(ctx context.Context, filter ItemFilter, pagination *Pagination) ([]*Item, error) {
			seen = filter
			return []*Item{}, nil
		},
	}
	svc := newCatalogService(items, nil, nil)

	if _, _, err := svc.ListItems(context.Background(), "alice", ItemFilter{}, &Pagination{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seen.OwnerSubject != "alice" {
		t.Errorf("expected filter scoped to alice, got %q", seen.OwnerSubject)
	}
}
