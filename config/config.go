package config

import (
	"log/slog"
	"os"
)

type Config struct {
	// Webhook configuration
	VerifyToken string
	AppSecret   string

	// Facebook Graph API
	PageAccessToken string

	// OpenAI configuration
	OpenAIAPIKey string

	// MongoDB configuration (optional message log)
	MongoURI     string
	DatabaseName string

	// Server configuration
	Port string

	Business Business
}

// Business holds the salon constants interpolated into the template
// catalog and the assistant prompt at startup.
type Business struct {
	Name        string
	BookingLink string
	MapsLink    string
	Address     string
	Phone       string
	Hours       string
}

func LoadConfig() *Config {
	cfg := &Config{
		VerifyToken:     getEnv("VERIFY_TOKEN", "salon_verify_token"),
		AppSecret:       getEnv("APP_SECRET", ""),
		PageAccessToken: getEnv("PAGE_ACCESS_TOKEN", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		MongoURI:        getEnv("MONGO_URI", ""),
		DatabaseName:    getEnv("MONGO_DB_NAME", "salon_bot"),
		Port:            getEnv("PORT", "10000"),
		Business:        DefaultBusiness(),
	}

	if cfg.PageAccessToken == "" {
		slog.Warn("PAGE_ACCESS_TOKEN not set, outbound messages will be dropped")
	}
	if cfg.OpenAIAPIKey == "" {
		slog.Warn("OPENAI_API_KEY not set, assistant fallback is disabled")
	}

	return cfg
}

// DefaultBusiness returns the salon constants. They are fixed per
// deployment, not per request.
func DefaultBusiness() Business {
	return Business{
		Name:        "Yelena Heal Aura Studio",
		BookingLink: "https://dikidi.ru/946726?p=2.pi-po-ssm&o=7",
		MapsLink:    "https://maps.app.goo.gl/wT6cVGeWgWH2XHeF7",
		Address:     "Bağlarbaşı mahallesi Atatürk caddesi Omay pasajı No:56 A blok Daire 50 Maltepe/İstanbul, Turkey",
		Phone:       "+90 531 000 00 00",
		Hours:       "10:00–20:00",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
