package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-labs/college-enroll-api/internal/models"
	"github.com/campus-labs/college-enroll-api/pkg/response"
)

type statsService interface {
	Get(ctx context.Context) (models.Stats, error)
}

// StatsHandler exposes the dashboard counters.
type StatsHandler struct {
	stats statsService
}

// NewStatsHandler constructs StatsHandler.
func NewStatsHandler(stats statsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get godoc
// @Summary Dashboard counters
// @Tags Stats
// @Produce json
// @Success 200 {object} models.Stats
// @Router /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats)
}
