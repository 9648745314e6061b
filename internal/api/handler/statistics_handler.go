package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/kwon0144/HarborHub/internal/service"
	"github.com/kwon0144/HarborHub/pkg/response"
)

// StatisticsHandler serves the dashboard aggregates.
type StatisticsHandler struct {
	statisticsSvc service.StatisticsService
}

// NewStatisticsHandler creates a StatisticsHandler.
func NewStatisticsHandler(statisticsSvc service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsSvc: statisticsSvc}
}

// GetStatistics returns rating, enrollment-trend and comment aggregates.
// GET /api/statistics
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statisticsSvc.Overview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}
