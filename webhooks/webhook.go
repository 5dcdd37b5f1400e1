package webhooks

import (
	"context"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"salon-bot/bot"
	"salon-bot/config"
	"salon-bot/models"
)

// dispatchTimeout bounds one full dispatch cycle, assistant call and
// outbound send included.
const dispatchTimeout = 60 * time.Second

func RegisterRoutes(app *fiber.App, cfg *config.Config, pipeline *bot.Pipeline) {
	webhook := app.Group("/webhook")

	// Webhook verification endpoint
	webhook.Get("/", verifyWebhook(cfg))

	// Webhook event handler
	webhook.Post("/", handleWebhookEvent(cfg, pipeline))
}

// verifyWebhook handles Facebook webhook verification
func verifyWebhook(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		mode := c.Query("hub.mode")
		token := c.Query("hub.verify_token")
		challenge := c.Query("hub.challenge")

		if mode == "subscribe" && token == cfg.VerifyToken {
			slog.Info("Webhook verified successfully")
			return c.SendString(challenge)
		}

		slog.Warn("Webhook verification failed", "mode", mode)
		return c.SendStatus(fiber.StatusForbidden)
	}
}

// handleWebhookEvent processes incoming webhook events
func handleWebhookEvent(cfg *config.Config, pipeline *bot.Pipeline) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !VerifySignature(cfg.AppSecret, c.Get(signatureHeader), c.Body()) {
			slog.Warn("Webhook signature mismatch, rejecting delivery")
			return c.SendStatus(fiber.StatusForbidden)
		}

		var body WebhookEvent
		if err := c.BodyParser(&body); err != nil {
			slog.Error("Failed to parse webhook body", "error", err)
			return c.SendStatus(fiber.StatusBadRequest)
		}

		// Process webhook asynchronously and return to Facebook
		// immediately; slow assistant calls must not hit the delivery
		// deadline.
		go processWebhookEvent(pipeline, body)

		return c.SendString("EVENT_RECEIVED")
	}
}

// processWebhookEvent dispatches each messaging event in a delivery.
// A malformed event only skips itself, never its siblings.
func processWebhookEvent(pipeline *bot.Pipeline, body WebhookEvent) {
	for _, entry := range body.Entry {
		for _, messaging := range entry.Messaging {
			msg, ok := inboundMessage(messaging)
			if !ok {
				continue
			}

			ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
			outcome := pipeline.Dispatch(ctx, msg)
			cancel()

			slog.Info("Message dispatched",
				"senderID", msg.SenderID,
				"outcome", outcome.String(),
			)
		}
	}
}

// inboundMessage extracts a dispatchable text message from a messaging
// event. Non-text events and events without a sender are skipped.
func inboundMessage(messaging Messaging) (models.InboundMessage, bool) {
	if messaging.Message == nil || messaging.Sender == nil {
		return models.InboundMessage{}, false
	}

	return models.InboundMessage{
		SenderID: messaging.Sender.ID,
		Text:     messaging.Message.Text,
		IsEcho:   messaging.Message.IsEcho,
	}, true
}
