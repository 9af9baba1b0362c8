package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/JohnnyBoySou/dash-s2mangas/internal/api/service"
)

type StatisticsHandler struct {
	service service.StatisticsService
}

func NewStatisticsHandler(s service.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{service: s}
}

func (h *StatisticsHandler) RegisterRoutes(admin gin.IRouter) {
	admin.GET("/statistics", h.GetStatistics)
}

// GetStatistics returns the dashboard overview counts.
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	stats, err := h.service.Overview(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
