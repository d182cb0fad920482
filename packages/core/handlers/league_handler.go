package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type LeagueHandler struct {
	leagueService *services.LeagueService
	settings      Settings
}

func NewLeagueHandler(leagueService *services.LeagueService, settings Settings) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		settings:      settings,
	}
}

// ListLeagues lists leagues
// @Summary List leagues
// @Description List leagues ordered by id, optionally filtered by name
// @Tags leagues
// @Produce json
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.LeagueResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/leagues [get]
func (h *LeagueHandler) ListLeagues(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.leagueService.ListLeagues(c.Request.Context(), c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(l *models.League) models.LeagueResponse {
		return leagueResponse(b, l)
	}))
}

// GetLeague retrieves a league
// @Summary Get league by ID
// @Tags leagues
// @Produce json
// @Param league path string true "League ID"
// @Success 200 {object} models.LeagueResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league} [get]
func (h *LeagueHandler) GetLeague(c *gin.Context) {
	path := middleware.GetPath(c)
	c.JSON(http.StatusOK, leagueResponse(h.settings.links(c), path.League))
}

// CreateLeague creates a league
// @Summary Create a league
// @Tags leagues
// @Accept json
// @Produce json
// @Param league body models.CreateLeagueRequest true "League"
// @Success 201 {object} models.LeagueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/leagues [post]
func (h *LeagueHandler) CreateLeague(c *gin.Context) {
	var req models.CreateLeagueRequest
	if !bindJSON(c, &req) {
		return
	}

	league, err := h.leagueService.CreateLeague(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.League(league.ID), leagueResponse(b, league))
}

// UpdateLeague replaces a league's name
// @Summary Update a league
// @Description The id cannot be changed; a body id that differs from the URL is rejected
// @Tags leagues
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param body body models.UpdateLeagueRequest true "League"
// @Success 200 {object} models.LeagueResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league} [put]
func (h *LeagueHandler) UpdateLeague(c *gin.Context) {
	var req models.UpdateLeagueRequest
	if !bindJSON(c, &req) {
		return
	}

	league, err := h.leagueService.UpdateLeague(c.Request.Context(), middleware.GetPath(c).League, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, leagueResponse(h.settings.links(c), league))
}

// DeleteLeague deletes a league
// @Summary Delete a league
// @Description Leagues that still have teams or seasons cannot be deleted
// @Tags leagues
// @Param league path string true "League ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/leagues/{league} [delete]
func (h *LeagueHandler) DeleteLeague(c *gin.Context) {
	if err := h.leagueService.DeleteLeague(c.Request.Context(), middleware.GetPath(c).League); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
