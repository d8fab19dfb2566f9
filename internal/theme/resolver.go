// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/cache"
	"dailyspin/internal/models"
)

// SettingCurrentTheme is the app_settings key holding the resolved current
// theme id. An empty value means no theme is resolved for today.
const SettingCurrentTheme = "current_theme_id"

// Resolver maintains the persisted "resolved current theme" value: the
// single active theme assigned to today's date, or none. The value is a
// derived cache of the calendar join, not a source of truth — it is
// repaired on every scheduler tick, on every mutation affecting today, and
// on process startup.
type Resolver struct {
	schedules ScheduleRepo
	themes    ThemeRepo
	settings  SettingRepo
	cache     *cache.ThemeCache // may be nil; reads then go straight to the DB
	clock     Clock
}

// NewResolver creates a resolver. themeCache may be nil when Valkey is not
// configured.
func NewResolver(schedules ScheduleRepo, themes ThemeRepo, settings SettingRepo, themeCache *cache.ThemeCache, clock Clock) *Resolver {
	return &Resolver{
		schedules: schedules,
		themes:    themes,
		settings:  settings,
		cache:     themeCache,
		clock:     clock,
	}
}

// Today returns the current civil date according to the resolver's clock.
func (r *Resolver) Today() time.Time {
	return DateOf(r.clock.Now())
}

// Refresh recomputes today's theme from the calendar and persists the
// result. Idempotent: with no intervening calendar writes, repeated calls
// persist the same value. The Valkey read cache is invalidated so the next
// Current call observes the new value.
func (r *Resolver) Refresh(ctx context.Context) error {
	today := r.Today()

	th, err := r.schedules.FindThemeForDate(today)
	if err != nil {
		return fmt.Errorf("resolve current theme: %w", err)
	}

	value := ""
	if th != nil {
		value = th.ID.String()
	}

	if err := r.settings.Set(SettingCurrentTheme, value); err != nil {
		return fmt.Errorf("persist current theme: %w", err)
	}

	r.cache.Invalidate(ctx)

	if th != nil {
		slog.Info("current theme resolved", "date", today.Format(DateLayout), "theme_id", th.ID, "title", th.Title)
	} else {
		slog.Info("no theme scheduled for today, current theme cleared", "date", today.Format(DateLayout))
	}
	return nil
}

// Current returns the theme resolved for today, or nil if none. A missing,
// malformed, or dangling stored value reads as "no theme" — callers never
// see a theme that no longer exists.
func (r *Resolver) Current(ctx context.Context) (*models.Theme, error) {
	if th, ok := r.cache.Get(ctx); ok {
		return th, nil
	}

	value, err := r.settings.Get(SettingCurrentTheme, "")
	if err != nil {
		return nil, fmt.Errorf("read current theme setting: %w", err)
	}
	if value == "" {
		return nil, nil
	}

	id, err := uuid.Parse(value)
	if err != nil {
		slog.Warn("malformed current theme setting, treating as none", "value", value)
		return nil, nil
	}

	th, err := r.themes.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("load current theme: %w", err)
	}
	if th == nil {
		slog.Warn("current theme setting references missing theme, treating as none", "theme_id", id)
		return nil, nil
	}

	r.cache.Set(ctx, th)
	return th, nil
}
