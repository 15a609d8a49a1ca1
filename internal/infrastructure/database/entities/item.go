package entities

import (
	"time"

	"github.com/google/uuid"

	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
)

// Item represents the database schema for classified listings.
type Item struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerSubject string    `gorm:"type:varchar(255);index:idx_item_owner;not null"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	CategoryID   uint      `gorm:"index:idx_item_category;not null"`
	CityID       *uint     `gorm:"index:idx_item_city"`
	Condition    string    `gorm:"type:varchar(10);not null;default:'used'"`
	ListingState string    `gorm:"type:varchar(10);index:idx_item_state;not null;default:'active'"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`

	Photos []ItemPhoto `gorm:"foreignKey:ItemID"`
}

// TableName specifies the table name for Item.
func (Item) TableName() string {
	return "items"
}

// ItemPhoto represents the database schema for item photo slots.
type ItemPhoto struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID `gorm:"type:uuid;index:idx_item_photo_item;not null"`
	URL       string    `gorm:"type:varchar(512);not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for ItemPhoto.
func (ItemPhoto) TableName() string {
	return "item_photos"
}

// EtoD converts database entity to domain model
func (i *Item) EtoD() *catalog.Item {
	photos := make([]catalog.ItemPhoto, len(i.Photos))
	for idx, photo := range i.Photos {
		photos[idx] = *photo.EtoD()
	}

	return &catalog.Item{
		ID:           i.ID,
		OwnerSubject: i.OwnerSubject,
		Title:        i.Title,
		Description:  i.Description,
		CategoryID:   i.CategoryID,
		CityID:       i.CityID,
		Condition:    catalog.Condition(i.Condition),
		ListingState: catalog.ListingState(i.ListingState),
		Photos:       photos,
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// NewSchemaItem creates a database entity from domain model
func NewSchemaItem(i *catalog.Item) *Item {
	return &Item{
		ID:           i.ID,
		OwnerSubject: i.OwnerSubject,
		Title:        i.Title,
		Description:  i.Description,
		CategoryID:   i.CategoryID,
		CityID:       i.CityID,
		Condition:    string(i.Condition),
		ListingState: string(i.ListingState),
		CreatedAt:    i.CreatedAt,
		UpdatedAt:    i.UpdatedAt,
	}
}

// EtoD converts database entity to domain model
func (p *ItemPhoto) EtoD() *catalog.ItemPhoto {
	return &catalog.ItemPhoto{
		ID:        p.ID,
		ItemID:    p.ItemID,
		URL:       p.URL,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
	}
}

// NewSchemaItemPhoto creates a database entity from domain model
func NewSchemaItemPhoto(p *catalog.ItemPhoto) *ItemPhoto {
	return &ItemPhoto{
		ID:        p.ID,
		ItemID:    p.ItemID,
		URL:       p.URL,
		Position:  p.Position,
		CreatedAt: p.CreatedAt,
	}
}
