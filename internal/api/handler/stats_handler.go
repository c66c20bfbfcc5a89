package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hrsuite/recruitment-service/internal/api/dto"
)

// GetStats handles GET /api/v1/recruitment/stats
// Read-only dashboard aggregates: open-job count, total applications,
// per-stage funnel counts, and the trailing 7-day daily trend.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	totalJobs, err := h.storage.CountOpenJobs(ctx)
	if err != nil {
		h.logger.Error("Failed to count open jobs", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute stats",
		})
		return
	}

	totalApplications, err := h.storage.CountApplications(ctx)
	if err != nil {
		h.logger.Error("Failed to count applications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute stats",
		})
		return
	}

	stageCounts, err := h.storage.StageDistribution(ctx)
	if err != nil {
		h.logger.Error("Failed to get stage distribution", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute stats",
		})
		return
	}

	trend, err := h.storage.ApplicationTrend(ctx, time.Now())
	if err != nil {
		h.logger.Error("Failed to get application trend", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to compute stats",
		})
		return
	}

	stageDistribution := make([]dto.StageCountDTO, len(stageCounts))
	for i, sc := range stageCounts {
		stageDistribution[i] = dto.StageCountDTO{Stage: sc.Stage, Count: sc.Count}
	}

	recentApplications := make([]dto.DateCountDTO, len(trend))
	for i, dc := range trend {
		recentApplications[i] = dto.DateCountDTO{
			Date:  dc.Date.Format("2006-01-02"),
			Count: dc.Count,
		}
	}

	c.JSON(http.StatusOK, dto.StatsResponse{
		TotalJobs:          totalJobs,
		TotalApplications:  totalApplications,
		StageDistribution:  stageDistribution,
		RecentApplications: recentApplications,
	})
}
