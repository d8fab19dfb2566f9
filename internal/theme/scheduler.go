// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SettingLastReset is the app_settings key recording the civil date the
// daily reset last ran. Used to detect a reset missed while the process
// was down across a midnight boundary.
const SettingLastReset = "last_reset_date"

// Scheduler runs the daily reset: a refresh of the resolved current theme
// at every midnight, plus a startup recovery pass for resets missed while
// the process was not running. A failed reset is logged and left for the
// next trigger; the previous resolved value stays in place.
type Scheduler struct {
	resolver *Resolver
	settings SettingRepo
	clock    Clock

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScheduler creates a stopped scheduler.
func NewScheduler(resolver *Resolver, settings SettingRepo, clock Clock) *Scheduler {
	return &Scheduler{
		resolver: resolver,
		settings: settings,
		clock:    clock,
	}
}

// Start launches the midnight reset loop. Calling Start on a running
// scheduler cancels the previous loop first, so re-initialization never
// accumulates timers that would double-fire the reset.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.wg.Wait()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx)

	slog.Info("daily reset scheduler started")
}

// Stop cancels the reset loop and waits for it to exit. Safe to call on a
// stopped scheduler.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel == nil {
		return
	}
	s.cancel()
	s.cancel = nil
	s.wg.Wait()

	slog.Info("daily reset scheduler stopped")
}

// run arms a timer for the next midnight, fires the reset, and re-arms.
func (s *Scheduler) run(ctx context.Context) {
	defer s.wg.Done()

	for {
		now := s.clock.Now()
		wait := nextMidnight(now).Sub(now)
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			slog.Info("running daily reset")
			s.runReset(ctx)
		}
	}
}

// RecoverMissedReset compares the last-reset marker against today and runs
// the reset if they differ (including a missing marker on first run).
// Errors are logged and swallowed: a failed recovery must not block server
// startup, and the feed path independently tolerates a stale resolved
// value.
func (s *Scheduler) RecoverMissedReset(ctx context.Context) {
	today := DateOf(s.clock.Now()).Format(DateLayout)

	last, err := s.settings.Get(SettingLastReset, "")
	if err != nil {
		slog.Warn("could not read last reset marker, skipping recovery check", "error", err)
		return
	}

	if last == today {
		slog.Info("daily reset already performed today", "date", today)
		return
	}

	slog.Info("missed daily reset detected, running now", "last_reset", last, "today", today)
	s.runReset(ctx)
}

// runReset performs the reset action shared by both triggers: refresh the
// resolved current theme, then persist the last-reset marker. A refresh
// failure leaves both the resolved value and the marker untouched, so the
// next trigger retries naturally.
func (s *Scheduler) runReset(ctx context.Context) {
	if err := s.resolver.Refresh(ctx); err != nil {
		slog.Error("daily reset failed, keeping previous resolved theme", "error", err)
		return
	}

	today := DateOf(s.clock.Now()).Format(DateLayout)
	if err := s.settings.Set(SettingLastReset, today); err != nil {
		slog.Error("could not persist last reset marker", "date", today, "error", err)
		return
	}

	slog.Info("daily reset completed", "date", today)
}

// nextMidnight returns the first instant of the next calendar day in t's
// location. time.Date normalizes across DST transitions.
func nextMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
}
