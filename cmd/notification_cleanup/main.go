// Command notification_cleanup purges read notifications past the retention
// window once and exits. Use it where an external scheduler owns the timing.
package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"salonbooking/internal/config"
	"salonbooking/internal/database"
	"salonbooking/internal/domain/notification"
	"salonbooking/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl := logger.New(cfg.AppEnv)
	defer func() { _ = zl.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL, zl.Named("db"))
	if err != nil {
		zl.Fatal("db connect failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	cleanup := notification.NewCleanup(notification.NewRepository(db), cfg.NotificationRetentionDays, zl)
	if _, err := cleanup.RunOnce(ctx); err != nil {
		zl.Fatal("notification cleanup failed", zap.Error(err))
	}
}
