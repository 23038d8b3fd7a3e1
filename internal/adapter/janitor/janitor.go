package janitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"ads-manager/internal/config/configs"
)

// Purger removes drafts untouched for longer than olderThan.
type Purger interface {
	PurgeStale(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Janitor purges abandoned campaign drafts on a cron schedule.
type Janitor struct {
	cron      *cron.Cron
	purger    Purger
	retention time.Duration
	timeout   time.Duration
	logger    *slog.Logger
}

// New schedules the purge. Overlapping runs are skipped.
func New(cfg configs.Drafts, purger Purger, logger *slog.Logger) (*Janitor, error) {
	j := &Janitor{
		purger:    purger,
		retention: cfg.Retention,
		timeout:   time.Minute,
		logger:    logger.With(slog.String("component", "janitor")),
	}
	j.cron = cron.New(cron.WithChain(cron.Recover(cronLogger{j.logger}), cron.SkipIfStillRunning(cronLogger{j.logger})))
	if _, err := j.cron.AddFunc(cfg.JanitorSchedule, j.run); err != nil {
		return nil, fmt.Errorf("janitor schedule %q: %w", cfg.JanitorSchedule, err)
	}
	return j, nil
}

func (j *Janitor) Start() {
	j.cron.Start()
}

// Stop halts the schedule and waits for a running purge or ctx.
func (j *Janitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce purges immediately.
func (j *Janitor) RunOnce(ctx context.Context) (int64, error) {
	return j.purger.PurgeStale(ctx, j.retention)
}

func (j *Janitor) run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()
	n, err := j.RunOnce(ctx)
	if err != nil {
		j.logger.Error("draft purge failed", slog.Any("error", err))
		return
	}
	if n > 0 {
		j.logger.Info("purged stale drafts", slog.Int64("count", n))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error(msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
