package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type countingSweeper struct {
	calls atomic.Int32
}

func (s *countingSweeper) SweepIdle() int {
	s.calls.Add(1)
	return 1
}

func TestSessionJanitorSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	NewSessionJanitor(sweeper, "@every 1m", zap.NewNop()).Sweep()
	assert.EqualValues(t, 1, sweeper.calls.Load())
}

func TestSessionJanitorStart(t *testing.T) {
	sweeper := &countingSweeper{}
	j := NewSessionJanitor(sweeper, "@every 1s", zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- j.Start(ctx) }()

	assert.Eventually(t, func() bool { return sweeper.calls.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestSessionJanitorBadSchedule(t *testing.T) {
	j := NewSessionJanitor(&countingSweeper{}, "every minute", zap.NewNop())
	require.Error(t, j.Start(context.Background()))
}
