// Package config gathers the environment-driven settings for the backend.
// cmd/main.go loads .env via godotenv before calling Load.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	// HTTP
	HTTPAddr string

	// Stores
	PostgresDSN   string
	RedisAddr     string
	RedisPassword string

	// Auth
	JWTSecret string

	// Email
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	FromName   string
	AdminEmail string

	// Telegram (optional sink; disabled when token is empty)
	TelegramToken  string
	TelegramChatID int64

	// Seed admin, created at boot when no admin account exists
	SeedAdminUser     string
	SeedAdminEmail    string
	SeedAdminPassword string
}

func Load() *Config {
	return &Config{
		HTTPAddr: getenv("HTTP_ADDR", ":8080"),

		PostgresDSN:   getenv("POSTGRES_DSN", "host=localhost user=user password=password dbname=critdb port=5432 sslmode=disable"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),

		JWTSecret: getenv("JWT_SECRET", "development-only-secret"),

		SMTPHost:   os.Getenv("SMTP_HOST"),
		SMTPPort:   getenvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASSWORD"),
		FromEmail:  getenv("EMAIL_FROM", "no-reply@crit.local"),
		FromName:   getenv("EMAIL_FROM_NAME", "Sistema de Quejas"),
		AdminEmail: os.Getenv("EMAIL_ADMIN"),

		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: getenvInt64("TELEGRAM_CHAT_ID", 0),

		SeedAdminUser:     getenv("SEED_ADMIN_USER", "admin"),
		SeedAdminEmail:    getenv("SEED_ADMIN_EMAIL", "admin@crit.local"),
		SeedAdminPassword: os.Getenv("SEED_ADMIN_PASSWORD"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
