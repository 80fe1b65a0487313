package controllers

import (
	"net/http"

	"MoodaGo/config"
	"MoodaGo/models"
	"MoodaGo/repository"
	"MoodaGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CalendarController serves the read side of emotion logs: the month grid
// and the single-day diary view.
type CalendarController struct {
	logs *repository.EmotionLogRepo
}

func NewCalendarController(logs *repository.EmotionLogRepo) *CalendarController {
	return &CalendarController{logs: logs}
}

// GetCalendar returns all emotion logs of one KST month.
func (cc *CalendarController) GetCalendar(c *gin.Context) {
	uid := c.GetString("uid")

	month := c.Query("month")
	if _, _, err := utils.MonthBounds(month); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month, expected YYYY-MM"})
		return
	}

	logs, err := cc.logs.ForMonth(uid, month)
	if err != nil {
		config.Logger.Errorw("calendar fetch failed", "error", err, "uid", uid, "month", month)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "calendar fetch failed"})
		return
	}

	out := models.CalendarResponse{Month: month, Logs: make([]models.EmotionLogResponse, 0, len(logs))}
	for i := range logs {
		out.Logs = append(out.Logs, logs[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{"data": out})
}

// GetDiary returns one day's emotion log.
func (cc *CalendarController) GetDiary(c *gin.Context) {
	uid := c.GetString("uid")

	day := c.Query("date")
	if !utils.ValidDay(day) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	log, err := cc.logs.ForDay(uid, day)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "no diary for that day"})
			return
		}
		config.Logger.Errorw("diary fetch failed", "error", err, "uid", uid, "day", day)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "diary fetch failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": log.ToResponse()})
}
