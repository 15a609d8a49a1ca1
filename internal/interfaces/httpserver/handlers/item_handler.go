package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/catalog"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/requests"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/responses"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// ItemHandler exposes HTTP entrypoints for classified listings, their photo
// slots, and the category/city lookups.
type ItemHandler struct {
	service catalog.Service
	log     zerolog.Logger
}

// NewItemHandler constructs the handler.
func NewItemHandler(service catalog.Service, log zerolog.Logger) *ItemHandler {
	return &ItemHandler{
		service: service,
		log:     log.With().Str("handler", "item").Logger(),
	}
}

// ListItems handles GET /v1/items
// @Summary List the caller's items
// @Tags Items
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Param category query string false "Category slug"
// @Param state query string false "Listing state"
// @Success 200 {object} responses.ItemListPayload
// @Router /v1/items [get]
func (h *ItemHandler) ListItems(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	filter := catalog.ItemFilter{}
	if slug := c.Query("category"); slug != "" {
		filter.CategorySlug = &slug
	}
	if state := c.Query("state"); state != "" {
		ls := catalog.ListingState(state)
		if !ls.Valid() {
			responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "state must be active or inactive", "catalog-list-bad-state")
			return
		}
		filter.ListingState = &ls
	}

	pagination := &catalog.Pagination{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", catalog.DefaultPageSize),
	}

	items, total, err := h.service.ListItems(c.Request.Context(), subject, filter, pagination)
	if err != nil {
		responses.HandleError(c, err, "failed to list items")
		return
	}

	c.JSON(http.StatusOK, responses.FromItems(items, total, pagination.Page, pagination.PageSize))
}

// CreateItem handles POST /v1/items
// @Summary Create an item
// @Tags Items
// @Accept json
// @Produce json
// @Param request body requests.CreateItemRequest true "Item"
// @Success 201 {object} responses.ItemPayload
// @Failure 400 {object} responses.ErrorResponse
// @Router /v1/items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "title, category_id and condition are required", "catalog-item-bad-request")
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), subject, &catalog.Item{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		CityID:       req.CityID,
		Condition:    catalog.Condition(req.Condition),
		ListingState: catalog.ListingState(req.ListingState),
	})
	if err != nil {
		responses.HandleError(c, err, "failed to create item")
		return
	}

	c.JSON(http.StatusCreated, responses.FromItem(item))
}

// GetItem handles GET /v1/items/:item_id
// @Summary Get an item
// @Tags Items
// @Produce json
// @Param item_id path string true "Item ID"
// @Success 200 {object} responses.ItemPayload
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/items/{item_id} [get]
func (h *ItemHandler) GetItem(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), subject, c.Param("item_id"))
	if err != nil {
		responses.HandleError(c, err, "failed to get item")
		return
	}

	c.JSON(http.StatusOK, responses.FromItem(item))
}

// UpdateItem handles PUT /v1/items/:item_id
// @Summary Update an item
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param request body requests.UpdateItemRequest true "Fields to update"
// @Success 200 {object} responses.ItemPayload
// @Failure 400 {object} responses.ErrorResponse
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/items/{item_id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "catalog-item-bad-request")
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), subject, c.Param("item_id"), &catalog.Item{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		CityID:       req.CityID,
		Condition:    catalog.Condition(req.Condition),
		ListingState: catalog.ListingState(req.ListingState),
	})
	if err != nil {
		responses.HandleError(c, err, "failed to update item")
		return
	}

	c.JSON(http.StatusOK, responses.FromItem(item))
}

// DeleteItem handles DELETE /v1/items/:item_id
// @Summary Delete an item and its photos
// @Tags Items
// @Param item_id path string true "Item ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/items/{item_id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), subject, c.Param("item_id")); err != nil {
		responses.HandleError(c, err, "failed to delete item")
		return
	}

	c.Status(http.StatusNoContent)
}

// AddPhoto handles POST /v1/items/:item_id/photos
// @Summary Attach a photo to an item
// @Tags Items
// @Accept json
// @Produce json
// @Param item_id path string true "Item ID"
// @Param request body requests.AddPhotoRequest true "Photo"
// @Success 201 {object} responses.ItemPhotoPayload
// @Failure 409 {object} responses.ErrorResponse
// @Router /v1/items/{item_id}/photos [post]
func (h *ItemHandler) AddPhoto(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "url is required", "catalog-photo-bad-request")
		return
	}

	photo, err := h.service.AddPhoto(c.Request.Context(), subject, c.Param("item_id"), req.URL, req.Position)
	if err != nil {
		responses.HandleError(c, err, "failed to add photo")
		return
	}

	c.JSON(http.StatusCreated, responses.FromItemPhoto(photo))
}

// DeletePhoto handles DELETE /v1/photos/:photo_id
// @Summary Remove a photo
// @Tags Items
// @Param photo_id path string true "Photo ID"
// @Success 204
// @Failure 403 {object} responses.ErrorResponse
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/photos/{photo_id} [delete]
func (h *ItemHandler) DeletePhoto(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	if err := h.service.DeletePhoto(c.Request.Context(), subject, c.Param("photo_id")); err != nil {
		responses.HandleError(c, err, "failed to delete photo")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListCategories handles GET /v1/categories
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {array} responses.CategoryPayload
// @Router /v1/categories [get]
func (h *ItemHandler) ListCategories(c *gin.Context) {
	categories, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list categories")
		return
	}

	payload := make([]responses.CategoryPayload, len(categories))
	for i, category := range categories {
		payload[i] = responses.FromCategory(category)
	}
	c.JSON(http.StatusOK, payload)
}

// CreateCategory handles POST /v1/categories
// @Summary Create a category
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body requests.CreateCategoryRequest true "Category"
// @Success 201 {object} responses.CategoryPayload
// @Failure 409 {object} responses.ErrorResponse
// @Router /v1/categories [post]
func (h *ItemHandler) CreateCategory(c *gin.Context) {
	if _, ok := requireSubject(c); !ok {
		return
	}

	var req requests.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "name is required", "catalog-category-bad-request")
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		responses.HandleError(c, err, "failed to create category")
		return
	}

	c.JSON(http.StatusCreated, responses.FromCategory(category))
}

// ListCities handles GET /v1/cities
// @Summary List cities
// @Tags Catalog
// @Produce json
// @Success 200 {array} responses.CityPayload
// @Router /v1/cities [get]
func (h *ItemHandler) ListCities(c *gin.Context) {
	cities, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "failed to list cities")
		return
	}

	payload := make([]responses.CityPayload, len(cities))
	for i, city := range cities {
		payload[i] = responses.FromCity(city)
	}
	c.JSON(http.StatusOK, payload)
}

func queryInt(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
