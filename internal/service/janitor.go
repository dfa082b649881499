package service

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionJanitor periodically evicts sessions nobody has touched for a while.
type SessionJanitor struct {
	sweeper  SessionSweeper
	schedule string
	logger   *zap.Logger
}

// NewSessionJanitor creates a janitor that sweeps on a cron schedule such as "@every 1m".
func NewSessionJanitor(sweeper SessionSweeper, schedule string, logger *zap.Logger) *SessionJanitor {
	return &SessionJanitor{
		sweeper:  sweeper,
		schedule: schedule,
		logger:   logger,
	}
}

// Start runs the sweep schedule until ctx is done.
func (j *SessionJanitor) Start(ctx context.Context) error {
	c := cron.New()

	_, err := c.AddFunc(j.schedule, j.Sweep)
	if err != nil {
		return err
	}

	c.Start()
	j.logger.Info("session janitor started", zap.String("schedule", j.schedule))

	<-ctx.Done()

	<-c.Stop().Done()
	j.logger.Info("session janitor stopped")
	return nil
}

// Sweep evicts idle sessions once.
func (j *SessionJanitor) Sweep() {
	if n := j.sweeper.SweepIdle(); n > 0 {
		j.logger.Info("idle sessions evicted", zap.Int("count", n))
	}
}
