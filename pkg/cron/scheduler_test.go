package cron

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRefresher struct {
	calls int
}

func (c *countingRefresher) RefreshAll(context.Context) { c.calls++ }

type countingSweeper struct {
	calls   int
	dropped int
}

func (c *countingSweeper) Sweep() int {
	c.calls++
	return c.dropped
}

func newTestScheduler(clients, shortcuts Refresher, sessions Sweeper) *Scheduler {
	return NewScheduler(clients, shortcuts, sessions, slog.New(slog.DiscardHandler))
}

func TestScheduler_StartStop(t *testing.T) {
	s := newTestScheduler(&countingRefresher{}, &countingRefresher{}, &countingSweeper{})

	require.NoError(t, s.Start())
	<-s.Stop().Done()
}

func TestScheduler_RefreshCaches(t *testing.T) {
	clients := &countingRefresher{}
	shortcuts := &countingRefresher{}
	s := newTestScheduler(clients, shortcuts, nil)

	s.refreshCaches()
	assert.Equal(t, 1, clients.calls)
	assert.Equal(t, 1, shortcuts.calls)
}

func TestScheduler_SweepSessions(t *testing.T) {
	sweeper := &countingSweeper{dropped: 3}
	s := newTestScheduler(nil, nil, sweeper)

	s.sweepSessions()
	assert.Equal(t, 1, sweeper.calls)

	// Nil sweeper must be a no-op, not a panic.
	assert.NotPanics(t, newTestScheduler(nil, nil, nil).sweepSessions)
}
