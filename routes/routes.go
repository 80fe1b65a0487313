package routes

import (
	"MoodaGo/controllers"
	"MoodaGo/middleware"

	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Auth        *controllers.AuthController
	Chat        *controllers.ChatController
	Personality *controllers.PersonalityController
	Calendar    *controllers.CalendarController
	Batch       *controllers.BatchController
}

func RegisterRoutes(r *gin.Engine, c Controllers, internalAuthToken string) {
	// Public routes (no auth)
	public := r.Group("/api/v1")
	{
		public.POST("/auth/login", c.Auth.Login)
	}

	// Authenticated routes
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware())
	{
		private.POST("/chat", c.Chat.SendMessage)
		private.GET("/messages", c.Chat.GetMessages)

		private.GET("/personalities", c.Personality.List)
		private.POST("/personalities", c.Personality.Create)
		private.DELETE("/personalities/:id", c.Personality.Delete)

		private.GET("/calendar", c.Calendar.GetCalendar)
		private.GET("/diary", c.Calendar.GetDiary)

		private.GET("/user", c.Auth.GetUser)
		private.POST("/user/personality", c.Auth.SelectPersonality)
	}

	// Internal routes (server-to-server, shared secret)
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware(internalAuthToken))
	{
		internal.POST("/daily-summary", c.Batch.RunDailySummary)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
