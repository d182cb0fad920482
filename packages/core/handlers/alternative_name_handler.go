package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

// AlternativeNameHandler serves the alternative names nested under teams and venues
type AlternativeNameHandler struct {
	alternativeNameService *services.AlternativeNameService
	settings               Settings
}

func NewAlternativeNameHandler(alternativeNameService *services.AlternativeNameService, settings Settings) *AlternativeNameHandler {
	return &AlternativeNameHandler{
		alternativeNameService: alternativeNameService,
		settings:               settings,
	}
}

// ListTeamAlternativeNames lists a team's alternative names
// @Summary List alternative names of a team
// @Tags alternative names
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.TeamAlternativeNameResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team}/alternative_names [get]
func (h *AlternativeNameHandler) ListTeamAlternativeNames(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	path := middleware.GetPath(c)
	page, err := h.alternativeNameService.ListTeamAlternativeNames(c.Request.Context(), path.Team, c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(n *models.TeamAlternativeName) models.TeamAlternativeNameResponse {
		return teamAlternativeNameResponse(b, path.League.ID, n)
	}))
}

// GetTeamAlternativeName retrieves one alternative name of a team
// @Summary Get alternative name of a team
// @Tags alternative names
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param name path int true "Alternative name ID"
// @Success 200 {object} models.TeamAlternativeNameResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team}/alternative_names/{name} [get]
func (h *AlternativeNameHandler) GetTeamAlternativeName(c *gin.Context) {
	path := middleware.GetPath(c)
	c.JSON(http.StatusOK, teamAlternativeNameResponse(h.settings.links(c), path.League.ID, path.TeamAlternativeName))
}

// CreateTeamAlternativeName adds an alternative name to a team
// @Summary Create alternative name of a team
// @Tags alternative names
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param body body models.AlternativeNameRequest true "Alternative name"
// @Success 201 {object} models.TeamAlternativeNameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team}/alternative_names [post]
func (h *AlternativeNameHandler) CreateTeamAlternativeName(c *gin.Context) {
	var req models.AlternativeNameRequest
	if !bindJSON(c, &req) {
		return
	}

	path := middleware.GetPath(c)
	name, err := h.alternativeNameService.CreateTeamAlternativeName(c.Request.Context(), path.Team, req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.TeamAlternativeName(path.League.ID, name.TeamID, name.ID), teamAlternativeNameResponse(b, path.League.ID, name))
}

// UpdateTeamAlternativeName renames an alternative name of a team
// @Summary Update alternative name of a team
// @Tags alternative names
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param name path int true "Alternative name ID"
// @Param body body models.AlternativeNameRequest true "Alternative name"
// @Success 200 {object} models.TeamAlternativeNameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team}/alternative_names/{name} [put]
func (h *AlternativeNameHandler) UpdateTeamAlternativeName(c *gin.Context) {
	var req models.AlternativeNameRequest
	if !bindJSON(c, &req) {
		return
	}

	path := middleware.GetPath(c)
	name, err := h.alternativeNameService.UpdateTeamAlternativeName(c.Request.Context(), path.TeamAlternativeName, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamAlternativeNameResponse(h.settings.links(c), path.League.ID, name))
}

// DeleteTeamAlternativeName deletes an alternative name of a team
// @Summary Delete alternative name of a team
// @Tags alternative names
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param name path int true "Alternative name ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team}/alternative_names/{name} [delete]
func (h *AlternativeNameHandler) DeleteTeamAlternativeName(c *gin.Context) {
	err := h.alternativeNameService.DeleteTeamAlternativeName(c.Request.Context(), middleware.GetPath(c).TeamAlternativeName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListVenueAlternativeNames lists a venue's alternative names
// @Summary List alternative names of a venue
// @Tags alternative names
// @Produce json
// @Param venue path string true "Venue ID"
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.VenueAlternativeNameResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue}/alternative_names [get]
func (h *AlternativeNameHandler) ListVenueAlternativeNames(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.alternativeNameService.ListVenueAlternativeNames(c.Request.Context(), middleware.GetPath(c).Venue, c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(n *models.VenueAlternativeName) models.VenueAlternativeNameResponse {
		return venueAlternativeNameResponse(b, n)
	}))
}

// GetVenueAlternativeName retrieves one alternative name of a venue
// @Summary Get alternative name of a venue
// @Tags alternative names
// @Produce json
// @Param venue path string true "Venue ID"
// @Param name path int true "Alternative name ID"
// @Success 200 {object} models.VenueAlternativeNameResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue}/alternative_names/{name} [get]
func (h *AlternativeNameHandler) GetVenueAlternativeName(c *gin.Context) {
	c.JSON(http.StatusOK, venueAlternativeNameResponse(h.settings.links(c), middleware.GetPath(c).VenueAlternativeName))
}

// CreateVenueAlternativeName adds an alternative name to a venue
// @Summary Create alternative name of a venue
// @Tags alternative names
// @Accept json
// @Produce json
// @Param venue path string true "Venue ID"
// @Param body body models.AlternativeNameRequest true "Alternative name"
// @Success 201 {object} models.VenueAlternativeNameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue}/alternative_names [post]
func (h *AlternativeNameHandler) CreateVenueAlternativeName(c *gin.Context) {
	var req models.AlternativeNameRequest
	if !bindJSON(c, &req) {
		return
	}

	name, err := h.alternativeNameService.CreateVenueAlternativeName(c.Request.Context(), middleware.GetPath(c).Venue, req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.VenueAlternativeName(name.VenueID, name.ID), venueAlternativeNameResponse(b, name))
}

// UpdateVenueAlternativeName renames an alternative name of a venue
// @Summary Update alternative name of a venue
// @Tags alternative names
// @Accept json
// @Produce json
// @Param venue path string true "Venue ID"
// @Param name path int true "Alternative name ID"
// @Param body body models.AlternativeNameRequest true "Alternative name"
// @Success 200 {object} models.VenueAlternativeNameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue}/alternative_names/{name} [put]
func (h *AlternativeNameHandler) UpdateVenueAlternativeName(c *gin.Context) {
	var req models.AlternativeNameRequest
	if !bindJSON(c, &req) {
		return
	}

	name, err := h.alternativeNameService.UpdateVenueAlternativeName(c.Request.Context(), middleware.GetPath(c).VenueAlternativeName, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, venueAlternativeNameResponse(h.settings.links(c), name))
}

// DeleteVenueAlternativeName deletes an alternative name of a venue
// @Summary Delete alternative name of a venue
// @Tags alternative names
// @Param venue path string true "Venue ID"
// @Param name path int true "Alternative name ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/venues/{venue}/alternative_names/{name} [delete]
func (h *AlternativeNameHandler) DeleteVenueAlternativeName(c *gin.Context) {
	err := h.alternativeNameService.DeleteVenueAlternativeName(c.Request.Context(), middleware.GetPath(c).VenueAlternativeName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
