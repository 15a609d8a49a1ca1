package entities

import (
	"time"

	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
)

// Category represents the database schema for item categories.
type Category struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Slug      string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for Category.
func (Category) TableName() string {
	return "categories"
}

// City represents the database schema for cities.
type City struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"type:varchar(100);uniqueIndex:idx_city_name_state;not null"`
	State string `gorm:"type:varchar(50);uniqueIndex:idx_city_name_state;not null"`
}

// TableName specifies the table name for City.
func (City) TableName() string {
	return "cities"
}

// EtoD converts database entity to domain model
func (c *Category) EtoD() *catalog.Category {
	return &catalog.Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
	}
}

// NewSchemaCategory creates a database entity from domain model
func NewSchemaCategory(c *catalog.Category) *Category {
	return &Category{
		ID:        c.ID,
		Name:      c.Name,
		Slug:      c.Slug,
		CreatedAt: c.CreatedAt,
	}
}

// EtoD converts database entity to domain model
func (c *City) EtoD() *catalog.City {
	return &catalog.City{
		ID:    c.ID,
		Name:  c.Name,
		State: c.State,
	}
}
