// Package app assembles the salon booking API and runs it until shutdown.
package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"salonbooking/internal/config"
	"salonbooking/internal/database"
	"salonbooking/internal/domain/notification"
	"salonbooking/internal/middleware"
	"salonbooking/internal/telemetry"
)

const (
	serviceName     = "salon-api"
	shutdownTimeout = 10 * time.Second
)

// Run serves the API until ctx is cancelled, then drains in-flight requests
// and releases every background resource.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		Enabled:      cfg.OTelEnabled,
		ServiceName:  serviceName,
		OTLPEndpoint: cfg.OTelEndpoint,
		SampleRatio:  cfg.OTelSampleRatio,
	})
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseURL, log.Named("db"))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	defer sqlDB.Close()

	database.SetMigrationLogger(zap.NewStdLog(log.Named("migrate")))
	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	channels := Channels{}
	if cfg.SMTPHost != "" {
		channels.Email = notification.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
	} else {
		log.Warn("SMTP_HOST not set, email notifications disabled")
	}
	if cfg.SMSWebhookURL != "" {
		channels.SMS = notification.NewWebhookSender(cfg.SMSWebhookURL, cfg.SMSWebhookToken)
	}
	var events *notification.KafkaPublisher
	if len(cfg.KafkaBrokers) > 0 {
		events = notification.NewKafkaPublisher(cfg.KafkaBrokers, cfg.AppointmentsTopic)
		channels.Events = events
	}

	limiter, rdb := rateLimiter(ctx, cfg, log)

	router := NewRouter(cfg, db, log, RouterOptions{
		Channels:  channels,
		RateLimit: limiter,
	})

	cleanup := notification.NewCleanup(router.Notifications, cfg.NotificationRetentionDays, log.Named("cleanup"))
	if err := cleanup.Start(cfg.NotificationCleanupCron); err != nil {
		return fmt.Errorf("schedule notification cleanup: %w", err)
	}

	srv := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           telemetry.WrapHandler(router.Engine, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown", zap.Error(err))
	}
	cleanup.Stop(shutdownCtx)
	if events != nil {
		if err := events.Close(); err != nil {
			log.Warn("kafka writer close", zap.Error(err))
		}
	}
	if rdb != nil {
		_ = rdb.Close()
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn("tracer shutdown", zap.Error(err))
	}
	return serveErr
}

// rateLimiter prefers the shared Redis window when REDIS_URL is reachable and
// falls back to per-process token buckets.
func rateLimiter(ctx context.Context, cfg *config.Config, log *zap.Logger) (gin.HandlerFunc, *redis.Client) {
	if cfg.RateLimitRPS <= 0 {
		return nil, nil
	}

	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Warn("invalid REDIS_URL, using in-memory rate limiter", zap.Error(err))
		} else {
			rdb := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			err := rdb.Ping(pingCtx).Err()
			cancel()
			if err == nil {
				log.Info("using redis rate limiter")
				return middleware.NewRedisRateLimiter(rdb, cfg.RateLimitBurst, time.Second, "salon:rl", log.Named("ratelimit")).Middleware(), rdb
			}
			log.Warn("redis unreachable, using in-memory rate limiter", zap.Error(err))
			_ = rdb.Close()
		}
	}

	rl := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go rl.Run(ctx, time.Minute)
	return rl.Middleware(), nil
}
