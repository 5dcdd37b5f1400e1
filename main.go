package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"salon-bot/bot"
	"salon-bot/config"
	"salon-bot/services"
	"salon-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Build and validate the template catalog before serving traffic.
	// A missing entry is a configuration defect, not a runtime condition.
	catalog := bot.NewCatalog(cfg.Business)
	if err := catalog.Validate(); err != nil {
		slog.Error("Template catalog is malformed", "error", err)
		os.Exit(1)
	}

	// Optional Mongo-backed message log
	var messageLog bot.MessageLog
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := services.InitMongoDB(ctx, cfg.MongoURI)
		if err != nil {
			slog.Error("Failed to connect to MongoDB, message log disabled", "error", err)
			// Continue anyway - the bot can answer without the audit log
		} else {
			defer db.Disconnect(ctx)
			messageLog = services.NewMessageStore(db, cfg.DatabaseName)
		}
	}

	// Wire the dispatch pipeline with its collaborators
	responder := services.NewOpenAIResponder(cfg.OpenAIAPIKey, cfg.Business)
	sender := services.NewMessengerSender(cfg.PageAccessToken)
	pipeline := bot.NewPipeline(catalog, responder, sender, messageLog)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.SendStatus(code)
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook routes
	webhooks.RegisterRoutes(app, cfg, pipeline)

	// Health check for uptime monitors
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
