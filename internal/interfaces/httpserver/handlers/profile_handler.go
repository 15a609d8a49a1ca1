package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/gustavogago/Produto-de-software/internal/domain/profile"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/requests"
	"github.com/gustavogago/Produto-de-software/internal/interfaces/httpserver/responses"
	"github.com/gustavogago/Produto-de-software/internal/utils/platformerrors"
)

// ProfileHandler exposes HTTP entrypoints for the caller's profile.
type ProfileHandler struct {
	service profile.Service
	log     zerolog.Logger
}

// NewProfileHandler constructs the handler.
func NewProfileHandler(service profile.Service, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With().Str("handler", "profile").Logger(),
	}
}

// GetProfile handles GET /v1/users/profile
// @Summary Get the caller's profile
// @Tags Profile
// @Produce json
// @Success 200 {object} responses.ProfilePayload
// @Failure 404 {object} responses.ErrorResponse
// @Router /v1/users/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), subject)
	if err != nil {
		responses.HandleError(c, err, "failed to get profile")
		return
	}

	c.JSON(http.StatusOK, responses.FromProfile(p))
}

// UpdateProfile handles PUT /v1/users/profile
// @Summary Update the caller's profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body requests.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} responses.ProfilePayload
// @Failure 400 {object} responses.ErrorResponse
// @Router /v1/users/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	subject, ok := requireSubject(c)
	if !ok {
		return
	}

	var req requests.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.HandleNewError(c, platformerrors.ErrorTypeValidation, "invalid request body", "profile-bad-request")
		return
	}

	p, err := h.service.Update(c.Request.Context(), subject, profile.UpdateParams{
		PhotoURL:             req.PhotoURL,
		Bio:                  req.Bio,
		CityID:               req.CityID,
		NotificationsEnabled: req.NotificationsEnabled,
		ParticipantID:        req.ParticipantID,
	})
	if err != nil {
		responses.HandleError(c, err, "failed to update profile")
		return
	}

	c.JSON(http.StatusOK, responses.FromProfile(p))
}
