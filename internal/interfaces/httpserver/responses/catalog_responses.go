package responses

import (
	"time"

	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
)

// ItemPayload is returned to clients.
type ItemPayload struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	CategoryID   uint               `json:"category_id"`
	CityID       *uint              `json:"city_id,omitempty"`
	Condition    string             `json:"condition"`
	ListingState string             `json:"listing_state"`
	Photos       []ItemPhotoPayload `json:"photos"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// ItemPhotoPayload is returned to clients.
type ItemPhotoPayload struct {
	ID       string `json:"id"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// ItemListPayload wraps a paginated item listing.
type ItemListPayload struct {
	Data     []ItemPayload `json:"data"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// CategoryPayload is returned to clients.
type CategoryPayload struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CityPayload is returned to clients.
type CityPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	State string `json:"state"`
}

// FromItem maps the domain item to DTO.
func FromItem(i *catalog.Item) ItemPayload {
	photos := make([]ItemPhotoPayload, len(i.Photos))
	for idx := range i.Photos {
		photos[idx] = FromItemPhoto(&i.Photos[idx])
	}
	return ItemPayload{
		ID:           i.ID.String(),
		Title:        i.Title,
		Description:  i.Description,
		CategoryID:   i.CategoryID,
		CityID:       i.CityID,
		Condition:    string(i.Condition),
		ListingState: string(i.ListingState),
		Photos:       photos,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// FromItemPhoto maps the domain photo to DTO.
func FromItemPhoto(p *catalog.ItemPhoto) ItemPhotoPayload {
	return ItemPhotoPayload{
		ID:       p.ID.String(),
		URL:      p.URL,
		Position: p.Position,
	}
}

// FromItems maps a paginated item listing to DTO.
func FromItems(items []*catalog.Item, total int64, page, pageSize int) ItemListPayload {
	data := make([]ItemPayload, len(items))
	for i := range items {
		data[i] = FromItem(items[i])
	}
	return ItemListPayload{
		Data:     data,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

// FromCategory maps the domain category to DTO.
func FromCategory(c *catalog.Category) CategoryPayload {
	return CategoryPayload{
		ID:   c.ID,
		Name: c.Name,
		Slug: c.Slug,
	}
}

// FromCity maps the domain city to DTO.
func FromCity(c *catalog.City) CityPayload {
	return CityPayload{
		ID:    c.ID,
		Name:  c.Name,
		State: c.State,
	}
}
