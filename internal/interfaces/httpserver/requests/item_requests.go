package requests

// CreateItemRequest creates a classified listing.
type CreateItemRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	CategoryID   uint   `json:"category_id" binding:"required"`
	CityID       *uint  `json:"city_id"`
	Condition    string `json:"condition" binding:"required"`
	ListingState string `json:"listing_state"`
}

// UpdateItemRequest updates a listing. Empty fields are left untouched.
type UpdateItemRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	CategoryID   uint   `json:"category_id"`
	CityID       *uint  `json:"city_id"`
	Condition    string `json:"condition"`
	ListingState string `json:"listing_state"`
}

// AddPhotoRequest attaches a photo slot to an item.
type AddPhotoRequest struct {
	URL      string `json:"url" binding:"required"`
	Position int    `json:"position"`
}

// CreateCategoryRequest creates a category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}
