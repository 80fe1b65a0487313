package controllers

import (
	"errors"
	"net/http"

	"MoodaGo/models"
	"MoodaGo/services"

	"github.com/gin-gonic/gin"
)

// BatchController exposes the operator-facing daily summary trigger. It
// calls the same orchestrator entry point as the scheduler.
type BatchController struct {
	summary *services.DailySummaryService
}

func NewBatchController(summary *services.DailySummaryService) *BatchController {
	return &BatchController{summary: summary}
}

// RunDailySummary runs one batch pass synchronously. The request blocks
// until the pass completes; worst case is users x the classify timeout.
func (bc *BatchController) RunDailySummary(c *gin.Context) {
	var req models.RunSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, models.RunSummaryResponse{Success: false, Error: err.Error()})
		return
	}

	mode, err := services.ParseRunMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.RunSummaryResponse{Success: false, Error: err.Error()})
		return
	}

	report, err := bc.summary.Run(c.Request.Context(), mode)
	if err != nil {
		if errors.Is(err, services.ErrRunInProgress) {
			c.JSON(http.StatusConflict, models.RunSummaryResponse{Success: false, Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, models.RunSummaryResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.RunSummaryResponse{
		Success:   true,
		Processed: report.Processed,
		Skipped:   report.Skipped,
		Failed:    report.Failed,
	})
}
