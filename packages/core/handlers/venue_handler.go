package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type VenueHandler struct {
	venueService *services.VenueService
	settings     Settings
}

func NewVenueHandler(venueService *services.VenueService, settings Settings) *VenueHandler {
	return &VenueHandler{
		venueService: venueService,
		settings:     settings,
	}
}

// ListVenues lists venues
// @Summary List venues
// @Tags venues
// @Produce json
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param alternative_names__name query string false "Exact alternative name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.VenueResponse]
// @Failure 400 {object} ErrorResponse
// @Router /v1/venues [get]
func (h *VenueHandler) ListVenues(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.venueService.ListVenues(c.Request.Context(), c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(v *models.Venue) models.VenueResponse {
		return venueResponse(b, v)
	}))
}

// GetVenue retrieves a venue and the timezone at its location
// @Summary Get venue
// @Tags venues
// @Produce json
// @Param venue path string true "Venue ID"
// @Success 200 {object} models.VenueResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue} [get]
func (h *VenueHandler) GetVenue(c *gin.Context) {
	c.JSON(http.StatusOK, venueResponse(h.settings.links(c), middleware.GetPath(c).Venue))
}

// CreateVenue creates a venue
// @Summary Create a venue
// @Description Latitude and longitude accept at most 6 decimal places
// @Tags venues
// @Accept json
// @Produce json
// @Param venue body models.VenueRequest true "Venue"
// @Success 201 {object} models.VenueResponse
// @Failure 400 {object} ErrorResponse
// @Router /v1/venues [post]
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var req models.VenueRequest
	if !bindJSON(c, &req) {
		return
	}

	venue, err := h.venueService.CreateVenue(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.Venue(venue.ID), venueResponse(b, venue))
}

// UpdateVenue replaces a venue's attributes
// @Summary Update a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param venue path string true "Venue ID"
// @Param body body models.VenueRequest true "Venue"
// @Success 200 {object} models.VenueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue} [put]
func (h *VenueHandler) UpdateVenue(c *gin.Context) {
	var req models.VenueRequest
	if !bindJSON(c, &req) {
		return
	}

	venue, err := h.venueService.UpdateVenue(c.Request.Context(), middleware.GetPath(c).Venue, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venueResponse(h.settings.links(c), venue))
}

// DeleteVenue deletes a venue and its alternative names
// @Summary Delete a venue
// @Description Venues with games cannot be deleted
// @Tags venues
// @Param venue path string true "Venue ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/venues/{venue} [delete]
func (h *VenueHandler) DeleteVenue(c *gin.Context) {
	if err := h.venueService.DeleteVenue(c.Request.Context(), middleware.GetPath(c).Venue); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
