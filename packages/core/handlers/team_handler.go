package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	teamService *services.TeamService
	settings    Settings
}

func NewTeamHandler(teamService *services.TeamService, settings Settings) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		settings:    settings,
	}
}

// ListTeams lists the teams of a league
// @Summary List teams of a league
// @Tags teams
// @Produce json
// @Param league path string true "League ID"
// @Param name query string false "Exact name"
// @Param name__contains query string false "Substring of the name"
// @Param alternative_names__name query string false "Exact alternative name"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.TeamResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	page, err := h.teamService.ListTeams(c.Request.Context(), middleware.GetPath(c).League, c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(t *models.Team) models.TeamResponse {
		return teamResponse(b, t)
	}))
}

// GetTeam retrieves a team of a league
// @Summary Get team
// @Tags teams
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Success 200 {object} models.TeamResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	c.JSON(http.StatusOK, teamResponse(h.settings.links(c), middleware.GetPath(c).Team))
}

// CreateTeam adds a team to a league
// @Summary Create a team
// @Description The league is taken from the URL
// @Tags teams
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param team body models.TeamRequest true "Team"
// @Success 201 {object} models.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req models.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), middleware.GetPath(c).League, req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.Team(team.LeagueID, team.ID), teamResponse(b, team))
}

// UpdateTeam replaces a team's attributes
// @Summary Update a team
// @Tags teams
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Param body body models.TeamRequest true "Team"
// @Success 200 {object} models.TeamResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	var req models.TeamRequest
	if !bindJSON(c, &req) {
		return
	}

	team, err := h.teamService.UpdateTeam(c.Request.Context(), middleware.GetPath(c).Team, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamResponse(h.settings.links(c), team))
}

// DeleteTeam deletes a team and its alternative names
// @Summary Delete a team
// @Description Teams that played in a game cannot be deleted
// @Tags teams
// @Param league path string true "League ID"
// @Param team path string true "Team ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /v1/leagues/{league}/teams/{team} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	if err := h.teamService.DeleteTeam(c.Request.Context(), middleware.GetPath(c).Team); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
