package controllers

import (
	"net/http"
	"strings"
	"time"

	"MoodaGo/config"
	"MoodaGo/models"
	"MoodaGo/repository"
	"MoodaGo/services"
	"MoodaGo/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PersonalityController struct {
	personalities *repository.PersonalityRepo
}

func NewPersonalityController(personalities *repository.PersonalityRepo) *PersonalityController {
	return &PersonalityController{personalities: personalities}
}

// List returns built-in personas plus the user's own.
func (pc *PersonalityController) List(c *gin.Context) {
	uid := c.GetString("uid")

	personalities, err := pc.personalities.ListForUser(uid)
	if err != nil {
		config.Logger.Errorw("personality list failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "personality list failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": personalities})
}

// Create builds a persona from the MBTI wizard result.
func (pc *PersonalityController) Create(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.CreatePersonalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !services.ValidMBTI(req.MBTI) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid MBTI code"})
		return
	}

	mbti := strings.ToUpper(req.MBTI)
	personality := models.Personality{
		ID:           utils.GenerateID(),
		UserID:       uid,
		Name:         req.Name,
		MBTI:         mbti,
		Tone:         req.Tone,
		SystemPrompt: services.BuildPersonalityPrompt(req.Name, mbti, req.Tone),
		IconRef:      "/images/personality/custom.png",
		CreatedAt:    time.Now(),
	}

	if err := pc.personalities.Create(&personality); err != nil {
		config.Logger.Errorw("personality creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "personality creation failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": personality})
}

// Delete removes one of the user's own personas.
func (pc *PersonalityController) Delete(c *gin.Context) {
	uid := c.GetString("uid")
	id := c.Param("id")

	if err := pc.personalities.Delete(uid, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "personality not found"})
			return
		}
		config.Logger.Errorw("personality deletion failed", "error", err, "uid", uid, "id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "personality deletion failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "personality deleted"})
}
