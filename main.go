package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MoodaGo/config"
	"MoodaGo/controllers"
	"MoodaGo/middleware"
	"MoodaGo/repository"
	"MoodaGo/routes"
	"MoodaGo/scheduler"
	"MoodaGo/services"
	"MoodaGo/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer config.Logger.Sync()

	conf, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	utils.InitJWT(conf.JWTSecret)

	db, err := config.InitDB(conf)
	if err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	redisClient, err := config.InitRedis(conf)
	if err != nil {
		log.Fatalf("failed to init redis: %v", err)
	}

	llmClient, err := services.NewLLMClient(conf.OpenAIAPIKey, conf.OpenAIAPIEndpoint, conf.OpenAIModel)
	if err != nil {
		log.Fatalf("failed to init LLM client: %v", err)
	}

	// Repositories
	userRepo := repository.NewUserRepo(db)
	messageRepo := repository.NewMessageRepo(db)
	emotionLogRepo := repository.NewEmotionLogRepo(db)
	personalityRepo := repository.NewPersonalityRepo(db)
	runLock := repository.NewRunLock(redisClient)

	// Services
	chatService := services.NewChatService(llmClient, redisClient)
	classifier := services.NewEmotionClassifier(llmClient.Chat, conf.ClassifyTimeout())
	summaryService := services.NewDailySummaryService(userRepo, messageRepo, emotionLogRepo, classifier, runLock)

	// Daily batch scheduler
	sched := scheduler.New(summaryService)
	if err := sched.Start(conf.SummaryCronSpec); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}

	if conf.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	middleware.SetupMiddleware(r)

	routes.RegisterRoutes(r, routes.Controllers{
		Auth:        controllers.NewAuthController(userRepo, personalityRepo),
		Chat:        controllers.NewChatController(chatService, userRepo, messageRepo, personalityRepo),
		Personality: controllers.NewPersonalityController(personalityRepo),
		Calendar:    controllers.NewCalendarController(emotionLogRepo),
		Batch:       controllers.NewBatchController(summaryService),
	}, conf.InternalAuthToken)

	srv := &http.Server{
		Addr:    ":" + conf.ServerPort,
		Handler: r,
	}

	go func() {
		config.Logger.Infow("server starting", "port", conf.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed to start: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	config.Logger.Infow("shutting down server")

	sched.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown failed: %v", err)
	}

	config.Logger.Infow("waiting for background tasks")
	chatService.Wait()
	config.Logger.Infow("server stopped")
}
