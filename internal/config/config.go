package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort              = "8080"
	defaultDatabaseURL       = "salon.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultJWTTTL            = "24h"
	defaultTimezone          = "UTC"
	defaultCORSOrigins       = "*"
	defaultRateLimitRPS      = "20"
	defaultRateLimitBurst    = "40"
	defaultSMTPPort          = "587"
	defaultSMTPFrom          = "Salon Booking <no-reply@salonbooking.local>"
	defaultNotifyTimeout     = "5s"
	defaultAppointmentsTopic = "appointments.lifecycle"
	defaultRetentionDays     = "90"
	defaultCleanupCron       = "@daily"
	defaultOTelEnabled       = "false"
	defaultOTelEndpoint      = "localhost:4317"
	defaultOTelSampling      = "1"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	Location    *time.Location

	JWTSecret string
	JWTTTL    time.Duration

	CORSAllowedOrigins []string
	RateLimitRPS       int
	RateLimitBurst     int
	RedisURL           string

	PublicBaseURL string

	SMTPHost        string
	SMTPPort        string
	SMTPFrom        string
	SMSWebhookURL   string
	SMSWebhookToken string
	NotifyTimeout   time.Duration

	KafkaBrokers      []string
	AppointmentsTopic string

	NotificationRetentionDays int
	NotificationCleanupCron   string

	OTelEnabled     bool
	OTelEndpoint    string
	OTelSampleRatio float64
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{}
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))
	cfg.RedisURL = strings.TrimSpace(os.Getenv("REDIS_URL"))
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PUBLIC_BASE_URL")), "/")
	cfg.SMTPHost = strings.TrimSpace(os.Getenv("SMTP_HOST"))
	cfg.SMTPPort = strings.TrimSpace(getEnv("SMTP_PORT", defaultSMTPPort))
	cfg.SMTPFrom = strings.TrimSpace(getEnv("SMTP_FROM", defaultSMTPFrom))
	cfg.SMSWebhookURL = strings.TrimSpace(os.Getenv("SMS_WEBHOOK_URL"))
	cfg.SMSWebhookToken = strings.TrimSpace(os.Getenv("SMS_WEBHOOK_TOKEN"))
	cfg.AppointmentsTopic = strings.TrimSpace(getEnv("KAFKA_APPOINTMENTS_TOPIC", defaultAppointmentsTopic))
	cfg.NotificationCleanupCron = strings.TrimSpace(getEnv("NOTIFICATION_CLEANUP_CRON", defaultCleanupCron))
	cfg.OTelEndpoint = strings.TrimSpace(getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", defaultOTelEndpoint))
	cfg.CORSAllowedOrigins = splitList(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins))
	cfg.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.OTelEnabled = parseBoolEnv("OTEL_ENABLED", defaultOTelEnabled)

	loc, err := time.LoadLocation(strings.TrimSpace(getEnv("APP_TIMEZONE", defaultTimezone)))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	cfg.Location = loc

	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}
	cfg.NotifyTimeout, err = parseDurationEnv("NOTIFY_TIMEOUT", defaultNotifyTimeout)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitRPS, err = parseIntEnv("RATE_LIMIT_RPS", defaultRateLimitRPS)
	if err != nil {
		return nil, err
	}
	cfg.RateLimitBurst, err = parseIntEnv("RATE_LIMIT_BURST", defaultRateLimitBurst)
	if err != nil {
		return nil, err
	}
	cfg.NotificationRetentionDays, err = parseIntEnv("NOTIFICATION_RETENTION_DAYS", defaultRetentionDays)
	if err != nil {
		return nil, err
	}
	cfg.OTelSampleRatio, err = parseFloatEnv("OTEL_SAMPLING_RATIO", defaultOTelSampling)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return isProdLike(c.AppEnv)
}

// IsPostgres reports whether DATABASE_URL points at PostgreSQL rather than a SQLite file.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") || strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func validateConfig(cfg *Config) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}
	if p, err := strconv.Atoi(cfg.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("PORT must be a valid TCP port (got %q)", cfg.Port)
	}
	if cfg.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be > 0")
	}
	if cfg.NotifyTimeout <= 0 {
		return fmt.Errorf("NOTIFY_TIMEOUT must be > 0")
	}
	if cfg.RateLimitRPS < 0 || cfg.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be >= 0")
	}
	if cfg.NotificationRetentionDays <= 0 {
		return fmt.Errorf("NOTIFICATION_RETENTION_DAYS must be > 0")
	}
	if cfg.OTelSampleRatio < 0 || cfg.OTelSampleRatio > 1 {
		return fmt.Errorf("OTEL_SAMPLING_RATIO must be within [0, 1]")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func parseFloatEnv(name, fallback string) (float64, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return f, nil
}

func parseBoolEnv(name, fallback string) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(name, fallback)))
	return value == "1" || value == "true" || value == "yes" || value == "on"
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
