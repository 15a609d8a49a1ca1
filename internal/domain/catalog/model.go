package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Condition describes the physical state of an item.
type Condition string

const (
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

// Valid reports whether the condition is one of the known values.
func (c Condition) Valid() bool {
	return c == ConditionNew || c == ConditionUsed
}

// ListingState controls whether an item shows up in listings.
type ListingState string

const (
	ListingStateActive   ListingState = "active"
	ListingStateInactive ListingState = "inactive"
)

// Valid reports whether the listing state is one of the known values.
func (s ListingState) Valid() bool {
	return s == ListingStateActive || s == ListingStateInactive
}

// Item is a classified listing owned by a single user.
type Item struct {
	ID           uuid.UUID
	OwnerSubject string
	Title        string
	Description  string
	CategoryID   uint
	CityID       *uint
	Condition    Condition
	ListingState ListingState
	Photos       []ItemPhoto
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemPhoto is a photo slot on an item. The blob lives in the media service;
// only the URL and position are stored here.
type ItemPhoto struct {
	ID        uuid.UUID
	ItemID    uuid.UUID
	URL       string
	Position  int
	CreatedAt time.Time
}

// Category groups items. The slug is unique and derived from the name.
type Category struct {
	ID        uint
	Name      string
	Slug      string
	CreatedAt time.Time
}

// City is a location an item or profile can reference.
type City struct {
	ID    uint
	Name  string
	State string
}

// Slugify lowercases a name and collapses non-alphanumeric runs to hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// ItemFilter narrows item listings.
type ItemFilter struct {
	OwnerSubject string
	CategoryID   *uint
	CategorySlug *string
	ListingState *ListingState
}

// Pagination selects a page of results.
type Pagination struct {
	Page     int
	PageSize int
}

const (
	// DefaultPageSize is used when the client does not ask for a size.
	DefaultPageSize = 12
	// MaxPageSize caps the page size a client may request.
	MaxPageSize = 100
)

// Normalize clamps the pagination to sane bounds.
func (p *Pagination) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}
