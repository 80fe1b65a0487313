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

// AuthController issues session tokens. OAuth code exchange with the
// identity provider happens outside this server; clients arrive here with
// a resolved provider identity.
type AuthController struct {
	users         *repository.UserRepo
	personalities *repository.PersonalityRepo
}

func NewAuthController(users *repository.UserRepo, personalities *repository.PersonalityRepo) *AuthController {
	return &AuthController{users: users, personalities: personalities}
}

// Login finds or creates the user and returns a JWT.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.DeviceLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.FindOrCreateByProvider(req.Provider, req.ProviderID, req.Username, req.Email)
	if err != nil {
		config.Logger.Errorw("login failed",
			"error", err,
			"provider", req.Provider,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	token, err := utils.GenerateToken(user.ID)
	if err != nil {
		config.Logger.Errorw("token generation failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{Token: token, User: *user})
}

// GetUser returns the authenticated user's profile.
func (ac *AuthController) GetUser(c *gin.Context) {
	uid := c.GetString("uid")

	user, err := ac.users.FindByID(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		config.Logger.Errorw("user lookup failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user lookup failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": user})
}

// SelectPersonality switches the user's active persona.
func (ac *AuthController) SelectPersonality(c *gin.Context) {
	uid := c.GetString("uid")

	var req models.SelectPersonalityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	personality, err := ac.personalities.FindByID(req.PersonalityID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "personality not found"})
		return
	}
	if !personality.IsBuiltin() && personality.UserID != uid {
		c.JSON(http.StatusForbidden, gin.H{"error": "personality not available"})
		return
	}

	if err := ac.users.SelectPersonality(uid, personality.ID); err != nil {
		config.Logger.Errorw("personality selection failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "personality selection failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "personality selected"})
}
