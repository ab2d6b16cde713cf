package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Mail       MailConfig
	Stripe     StripeConfig
	Store      StoreConfig
	Cloudinary CloudinaryConfig
	Admin      AdminConfig
	CORS       CORSConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// MailConfig configures the SMTP transport. DryRun forces log-only
// delivery; it is also switched on automatically when SenderPassword
// is empty so non-production environments never hit the network.
type MailConfig struct {
	SMTPHost          string
	SMTPPort          int
	SenderEmail       string
	SenderPassword    string
	NotificationEmail string
	DryRun            bool
	SendTimeout       time.Duration
}

type StripeConfig struct {
	APIKey        string
	WebhookSecret string
}

type StoreConfig struct {
	Name     string
	Currency string // default currency for checkout sessions
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

// AdminConfig seeds the single admin account used for the CMS editor
// and review moderation.
type AdminConfig struct {
	Email    string
	Password string
}

type CORSConfig struct {
	Origins []string
}

func Load() *Config {
	dryRun := envBool("MAIL_DRY_RUN", false)
	senderPassword := os.Getenv("SENDER_PASSWORD")
	if senderPassword == "" {
		dryRun = true
	}
	return &Config{
		Server: ServerConfig{
			Port:         env("PORT", "8088"),
			Env:          env("ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:             env("MYSQL_DSN", "absign:absign@tcp(localhost:3306)/absign?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    10,
			MaxOpenConns:    100,
			ConnMaxLifetime: time.Hour,
		},
		JWT: JWTConfig{
			AccessSecret: env("JWT_ACCESS_SECRET", "change-me-in-production"),
			AccessExpiry: envDuration("JWT_ACCESS_EXPIRY", 12*time.Hour),
			Issuer:       "absign",
		},
		Mail: MailConfig{
			SMTPHost:          env("SMTP_HOST", "smtp.gmail.com"),
			SMTPPort:          envInt("SMTP_PORT", 587),
			SenderEmail:       env("SENDER_EMAIL", "noreply@absigns.com"),
			SenderPassword:    senderPassword,
			NotificationEmail: env("NOTIFICATION_EMAIL", "acrylicbraillesigns@gmail.com"),
			DryRun:            dryRun,
			SendTimeout:       envDuration("MAIL_SEND_TIMEOUT", 15*time.Second),
		},
		Stripe: StripeConfig{
			APIKey:        os.Getenv("STRIPE_API_KEY"),
			WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		},
		Store: StoreConfig{
			Name:     env("STORE_NAME", "AB Signs"),
			Currency: env("STORE_CURRENCY", "cad"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
		Admin: AdminConfig{
			Email:    env("ADMIN_EMAIL", "admin@absigns.com"),
			Password: env("ADMIN_PASSWORD", "change-me"),
		},
		CORS: CORSConfig{
			Origins: strings.Split(env("CORS_ORIGINS", "*"), ","),
		},
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
