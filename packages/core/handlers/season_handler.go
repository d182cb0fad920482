package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type SeasonHandler struct {
	seasonService *services.SeasonService
	settings      Settings
}

func NewSeasonHandler(seasonService *services.SeasonService, settings Settings) *SeasonHandler {
	return &SeasonHandler{
		seasonService: seasonService,
		settings:      settings,
	}
}

// ListSeasons lists the seasons of a league
// @Summary List seasons of a league
// @Tags seasons
// @Produce json
// @Param league path string true "League ID"
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.SeasonResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons [get]
func (h *SeasonHandler) ListSeasons(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.seasonService.ListSeasons(c.Request.Context(), middleware.GetPath(c).League, c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(s *models.Season) models.SeasonResponse {
		return seasonResponse(b, s)
	}))
}

// GetSeason retrieves a season of a league
// @Summary Get season
// @Tags seasons
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Success 200 {object} models.SeasonResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season} [get]
func (h *SeasonHandler) GetSeason(c *gin.Context) {
	c.JSON(http.StatusOK, seasonResponse(h.settings.links(c), middleware.GetPath(c).Season))
}

// CreateSeason adds a season to a league
// @Summary Create a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param season body models.SeasonRequest true "Season"
// @Success 201 {object} models.SeasonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons [post]
func (h *SeasonHandler) CreateSeason(c *gin.Context) {
	var req models.SeasonRequest
	if !bindJSON(c, &req) {
		return
	}

	season, err := h.seasonService.CreateSeason(c.Request.Context(), middleware.GetPath(c).League, req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.Season(season.LeagueID, season.ID), seasonResponse(b, season))
}

// UpdateSeason renames a season
// @Summary Update a season
// @Tags seasons
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param body body models.SeasonRequest true "Season"
// @Success 200 {object} models.SeasonResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season} [put]
func (h *SeasonHandler) UpdateSeason(c *gin.Context) {
	var req models.SeasonRequest
	if !bindJSON(c, &req) {
		return
	}

	season, err := h.seasonService.UpdateSeason(c.Request.Context(), middleware.GetPath(c).Season, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, seasonResponse(h.settings.links(c), season))
}

// DeleteSeason deletes a season
// @Summary Delete a season
// @Description Seasons that still have games cannot be deleted
// @Tags seasons
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season} [delete]
func (h *SeasonHandler) DeleteSeason(c *gin.Context) {
	if err := h.seasonService.DeleteSeason(c.Request.Context(), middleware.GetPath(c).Season); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
