package handlers

import (
	"net/http"

	"footy-api/packages/core/middleware"
	"footy-api/packages/core/models"
	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService *services.GameService
	settings    Settings
}

func NewGameHandler(gameService *services.GameService, settings Settings) *GameHandler {
	return &GameHandler{
		gameService: gameService,
		settings:    settings,
	}
}

// ListGames lists the games of a season
// @Summary List games of a season
// @Description Games are ordered by start time. Filters take team and venue ids.
// @Tags games
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param team_1 query string false "Team 1 ID"
// @Param team_2 query string false "Team 2 ID"
// @Param venue query string false "Venue ID"
// @Param page query int false "Page number (default: 1)"
// @Param page_size query int false "Page size (default: 20, max: 100)"
// @Success 200 {object} models.PaginatedResponse[models.GameResponse]
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season}/games [get]
func (h *GameHandler) ListGames(c *gin.Context) {
	pageReq, err := h.settings.pageRequest(c)
	if err != nil {
		respondError(c, err)
		return
	}

	path := middleware.GetPath(c)
	page, err := h.gameService.ListGames(c.Request.Context(), path.Season, c.Request.URL.Query(), pageReq)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	c.JSON(http.StatusOK, paginated(c, h.settings, page, func(g *models.Game) models.GameResponse {
		return gameResponse(b, path.League.ID, g)
	}))
}

// GetGame retrieves a game with its derived scores
// @Summary Get game
// @Tags games
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param game path int true "Game ID"
// @Success 200 {object} models.GameResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season}/games/{game} [get]
func (h *GameHandler) GetGame(c *gin.Context) {
	path := middleware.GetPath(c)
	c.JSON(http.StatusOK, gameResponse(h.settings.links(c), path.League.ID, path.Game))
}

// CreateGame schedules a game in a season
// @Summary Create a game
// @Description team_1, team_2 and venue are resource links. Both teams must belong to the season's league.
// @Tags games
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param game body models.GameRequest true "Game"
// @Success 201 {object} models.GameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season}/games [post]
func (h *GameHandler) CreateGame(c *gin.Context) {
	var req models.GameRequest
	if !bindJSON(c, &req) {
		return
	}

	path := middleware.GetPath(c)
	game, err := h.gameService.CreateGame(c.Request.Context(), path.Season, req)
	if err != nil {
		respondError(c, err)
		return
	}

	b := h.settings.links(c)
	created(c, b.Game(path.League.ID, game.SeasonID, game.ID), gameResponse(b, path.League.ID, game))
}

// UpdateGame replaces a game's attributes
// @Summary Update a game
// @Tags games
// @Accept json
// @Produce json
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param game path int true "Game ID"
// @Param body body models.GameRequest true "Game"
// @Success 200 {object} models.GameResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season}/games/{game} [put]
func (h *GameHandler) UpdateGame(c *gin.Context) {
	var req models.GameRequest
	if !bindJSON(c, &req) {
		return
	}

	path := middleware.GetPath(c)
	game, err := h.gameService.UpdateGame(c.Request.Context(), path.Game, path.Season, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gameResponse(h.settings.links(c), path.League.ID, game))
}

// DeleteGame deletes a game
// @Summary Delete a game
// @Tags games
// @Param league path string true "League ID"
// @Param season path string true "Season ID"
// @Param game path int true "Game ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /v1/leagues/{league}/seasons/{season}/games/{game} [delete]
func (h *GameHandler) DeleteGame(c *gin.Context) {
	if err := h.gameService.DeleteGame(c.Request.Context(), middleware.GetPath(c).Game); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
