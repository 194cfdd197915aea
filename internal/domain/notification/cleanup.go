package notification

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

type RetentionStore interface {
	DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// Cleanup purges read notifications past the retention window on a cron schedule.
type Cleanup struct {
	repo      RetentionStore
	retention time.Duration
	now       func() time.Time
	log       *zap.Logger
	cron      *cron.Cron
}

func NewCleanup(repo RetentionStore, retentionDays int, log *zap.Logger) *Cleanup {
	if log == nil {
		log = zap.NewNop()
	}
	if retentionDays <= 0 {
		retentionDays = 90
	}
	cronLog := cron.PrintfLogger(zap.NewStdLog(log.Named("cron")))
	return &Cleanup{
		repo:      repo,
		retention: time.Duration(retentionDays) * 24 * time.Hour,
		now:       time.Now,
		log:       log,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
	}
}

func (c *Cleanup) RunOnce(ctx context.Context) (int64, error) {
	start := time.Now()
	cutoff := c.now().UTC().Add(-c.retention)

	deleted, err := c.repo.DeleteReadOlderThan(ctx, cutoff)
	if err != nil {
		c.log.Error("notification cleanup failed", zap.Error(err))
		return 0, err
	}
	c.log.Info("notification cleanup completed",
		zap.Int64("deleted", deleted),
		zap.Time("cutoff", cutoff),
		zap.Duration("took", time.Since(start)),
	)
	return deleted, nil
}

// Start schedules RunOnce with a standard cron spec or descriptor such as "@daily".
func (c *Cleanup) Start(spec string) error {
	if _, err := c.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		_, _ = c.RunOnce(ctx)
	}); err != nil {
		return err
	}
	c.cron.Start()
	c.log.Info("notification cleanup scheduled", zap.String("spec", spec), zap.Duration("retention", c.retention))
	return nil
}

// Stop halts the scheduler and waits for a running job to finish or ctx to expire.
func (c *Cleanup) Stop(ctx context.Context) {
	select {
	case <-c.cron.Stop().Done():
	case <-ctx.Done():
	}
}
