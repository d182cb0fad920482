package handlers

import (
	"net/http"

	"footy-api/packages/core/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// GetStats retrieves general statistics
// @Summary Get general statistics
// @Description Get totals per resource and the number of games played in the last 7 days or scheduled in the next 7 days
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} ErrorResponse
// @Router /v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("failed to retrieve statistics")
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to retrieve statistics",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}
