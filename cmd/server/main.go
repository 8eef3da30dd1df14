package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"github.com/robfig/cron"

	config "github.com/maheshrc27/dronepost/configs"
	"github.com/maheshrc27/dronepost/internal/api/handlers"
	"github.com/maheshrc27/dronepost/internal/api/middleware"
	job "github.com/maheshrc27/dronepost/internal/jobs"
	"github.com/maheshrc27/dronepost/internal/scheduler"
	"github.com/maheshrc27/dronepost/internal/service"
	"github.com/maheshrc27/dronepost/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()

	generator := service.NewContentGenerator(*cfg, cfg.MockMode)
	publisher := service.NewTiktokService(*cfg, cfg.MockMode)
	processor := service.NewVideoProcessor(cfg.MockMode)
	queueStore := store.NewQueueStore(cfg.ScheduleFile)

	engine := scheduler.New(scheduler.Config{
		Generator: generator,
		Publisher: publisher,
		Video:     processor,
		Store:     queueStore,
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		MaxAge:       3600,
	}))

	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})

	authMiddleware := middleware.NewAuthMiddleware(*cfg)

	api := app.Group("/api")
	api.Use(authMiddleware.AuthMiddleware())

	queue := handlers.NewQueueHandler(engine, generator, publisher)
	api.Get("/queue/status", queue.Status)
	api.Get("/queue", queue.ListQueue)
	api.Post("/queue/generate", queue.Generate)
	api.Post("/queue/manual", queue.AddManual)
	api.Post("/queue/process", queue.Process)
	api.Post("/queue/remove", queue.Remove)
	api.Get("/hashtags", queue.Hashtags)
	api.Get("/trends", queue.Trends)
	api.Get("/videos/:id", queue.VideoInfo)

	// cron jobs
	refreshTokenJob := job.NewTokenRefreshJob(publisher)

	c := cron.New()
	c.AddFunc("@every 00h10m00s", refreshTokenJob.RefreshTokens)
	c.Start()

	ctx, cancel := context.WithCancel(context.Background())
	go engine.Run(ctx)

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on %s (mock mode: %v)", cfg.ListenAddr, cfg.MockMode)

	gracefulShutdown(app, engine, cancel)
}

func gracefulShutdown(app *fiber.App, engine *scheduler.Engine, cancel context.CancelFunc) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	cancel()
	engine.Flush()

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	log.Println("Server shutdown complete.")
}
