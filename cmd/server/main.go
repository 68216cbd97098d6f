package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/brandpulse/configs"
	"github.com/maheshrc27/brandpulse/internal/ai"
	"github.com/maheshrc27/brandpulse/internal/api/handlers"
	"github.com/maheshrc27/brandpulse/internal/api/middleware"
	job "github.com/maheshrc27/brandpulse/internal/jobs"
	"github.com/maheshrc27/brandpulse/internal/platform"
	"github.com/maheshrc27/brandpulse/internal/queue"
	"github.com/maheshrc27/brandpulse/internal/repository"
	"github.com/maheshrc27/brandpulse/internal/service"
	"github.com/robfig/cron"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	db, err := sql.Open("postgres", cfg.PostgresURI)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer closeDB(db)

	if err := db.Ping(); err != nil {
		log.Fatalf("Database is unreachable: %v", err)
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  5 * time.Minute,
		WriteTimeout: 5 * time.Minute,
		BodyLimit:    25 * 1024 * 1024, // 25 MB
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool {
			return true
		},
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	userRepo := repository.NewUserRepository(db)
	businessRepo := repository.NewBusinessRepository(db)
	socialAccountRepo := repository.NewSocialAccountRepository(db)
	mentionRepo := repository.NewMentionRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	generatedPostRepo := repository.NewGeneratedPostRepository(db)
	scheduledPostRepo := repository.NewScheduledPostRepository(db)
	apiUsageRepo := repository.NewApiUsageRepository(db)
	apiKeyRepo := repository.NewApiKeyRepository(db)

	sources := platform.NewRegistry(
		platform.NewTwitterSource(cfg.TwitterBearerToken),
		platform.NewInstagramSource(),
		platform.NewFacebookSource(),
		platform.NewLinkedinSource(),
	)

	llm := ai.NewClient(cfg.AI.BaseURL, cfg.AI.APIKey, cfg.AI.Model)
	classifier := ai.NewClassifier(llm)
	generator := ai.NewGenerator(llm)

	authService := service.NewAuthService(*cfg, userRepo, businessRepo)
	userService := service.NewUserService(userRepo, businessRepo)
	accountService := service.NewAccountService(socialAccountRepo)
	mentionService := service.NewMentionService(mentionRepo)
	ingestionService := service.NewIngestionService(socialAccountRepo, mentionRepo, sources)
	analyticsService := service.NewAnalyticsService(analyticsRepo)
	analysisService := service.NewAnalysisService(mentionRepo, analyticsService, classifier, cfg.AnalysisPacing)
	generationService := service.NewGenerationService(db, generatedPostRepo, businessRepo, apiUsageRepo, generator)
	scheduleService := service.NewScheduleService(scheduledPostRepo, socialAccountRepo, generatedPostRepo, businessRepo)
	billingService := service.NewBillingService(businessRepo)
	mediaService := service.NewMediaService(*cfg)
	apiKeyService := service.NewApiKeyService(apiKeyRepo)

	authMiddleware := middleware.NewAuthMiddleware(*cfg, apiKeyService, userService)

	auth := handlers.NewAuthHandler(*cfg, authService)
	app.Get("/login", auth.Login)
	app.Get("/login/callback", auth.LoginCallbackHandler)

	billing := handlers.NewBillingHandler(*cfg, billingService)
	app.Post("/webhooks/billing", billing.HandleWebhook)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	user := handlers.NewUserHandler(userService)
	api.Get("/user/info", user.GetUserInfo)

	account := handlers.NewAccountHandler(accountService)
	api.Get("/accounts", account.ListAccounts)
	api.Post("/accounts/disconnect", account.DisconnectAccount)

	mention := handlers.NewMentionHandler(mentionService, ingestionService)
	api.Get("/mentions", mention.ListMentions)
	api.Post("/mentions/ingest", mention.IngestMentions)

	analysis := handlers.NewAnalysisHandler(analysisService)
	api.Post("/analysis/run", analysis.RunAnalysis)
	api.Post("/analysis/text", analysis.AnalyzeText)

	analytics := handlers.NewAnalyticsHandler(analyticsService)
	api.Get("/analytics/daily", analytics.DailySentiment)
	api.Get("/analytics/overview", analytics.Overview)

	generation := handlers.NewGenerationHandler(generationService)
	api.Post("/generate", generation.GeneratePosts)
	api.Get("/generate/list", generation.ListGenerated)

	schedule := handlers.NewScheduleHandler(scheduleService, client)
	api.Post("/schedule", schedule.CreateSchedule)
	api.Get("/schedule/list", schedule.ListSchedules)
	api.Post("/schedule/update", schedule.UpdateSchedule)
	api.Post("/schedule/cancel", schedule.CancelSchedule)

	media := handlers.NewMediaHandler(*mediaService)
	api.Post("/media/upload", media.UploadMedia)

	apiKeys := handlers.NewApiKeyHandler(apiKeyService)
	api.Post("/api_key/new", apiKeys.CreateApiKey)
	api.Get("/api_key/list", apiKeys.ListKeys)
	api.Post("/api_key/remove", apiKeys.RemoveAPIKey)

	// cron jobs
	ingestJob := job.NewIngestJob(socialAccountRepo, client)
	tokenExpiryJob := job.NewTokenExpiryJob(socialAccountRepo)

	// queue
	queueW := queue.NewQueue(scheduledPostRepo, generatedPostRepo, socialAccountRepo, ingestionService, analysisService)

	c := cron.New()
	c.AddFunc("@every 00h15m00s", ingestJob.SweepAccounts)
	c.AddFunc("@every 00h10m00s", tokenExpiryJob.DeactivateExpired)
	c.Start()

	go func() {
		server := asynq.NewServer(redisConn, asynq.Config{
			Concurrency: 10,
		})

		mux := asynq.NewServeMux()
		mux.HandleFunc(queue.TaskTypePublishPost, queueW.HandlePublishPostTask)
		mux.HandleFunc(queue.TaskTypeIngestAccount, queueW.HandleIngestAccountTask)
		mux.HandleFunc(queue.TaskTypeAnalyzeMention, queueW.HandleAnalyzeBatchTask)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":3000"); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Println("Server is running on http://localhost:3000")

	gracefulShutdown(app, db)
}

func closeDB(db *sql.DB) {
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	closeDB(db)
	log.Println("Server shutdown complete.")
}
