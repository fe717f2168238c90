// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher reloads a cache from its source of truth.
type Refresher interface {
	RefreshAll(ctx context.Context)
}

// Sweeper evicts stale entries and reports how many were dropped.
type Sweeper interface {
	Sweep() int
}

// Scheduler manages the assistant's background jobs: cache refreshes for
// clients and shortcuts, and session eviction.
type Scheduler struct {
	cron      *cron.Cron
	clients   Refresher
	shortcuts Refresher
	sessions  Sweeper
	logger    *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(clients, shortcuts Refresher, sessions Sweeper, logger *slog.Logger) *Scheduler {
	// Standard 5-field format, no seconds.
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:      c,
		clients:   clients,
		shortcuts: shortcuts,
		sessions:  sessions,
		logger:    logger,
	}
}

// Start registers and begins the scheduled jobs.
func (s *Scheduler) Start() error {
	// Cache refresh every 15 minutes.
	if _, err := s.cron.AddFunc("*/15 * * * *", s.refreshCaches); err != nil {
		return err
	}
	// Session sweep hourly.
	if _, err := s.cron.AddFunc("0 * * * *", s.sweepSessions); err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

func (s *Scheduler) refreshCaches() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if s.clients != nil {
		s.clients.RefreshAll(ctx)
	}
	if s.shortcuts != nil {
		s.shortcuts.RefreshAll(ctx)
	}
	s.logger.Debug("assistant caches refreshed")
}

func (s *Scheduler) sweepSessions() {
	if s.sessions == nil {
		return
	}
	dropped := s.sessions.Sweep()
	if dropped > 0 {
		s.logger.Info("idle sessions evicted", slog.Int("count", dropped))
	}
}
