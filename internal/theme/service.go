// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/store"
)

// Service exposes the theme catalog and scheduling calendar to the API
// layer. Mutations that can change what "today's theme" means trigger a
// synchronous resolver refresh, so callers polling the current theme see
// the effect immediately rather than at the next midnight tick.
type Service struct {
	themes    ThemeRepo
	schedules ScheduleRepo
	resolver  *Resolver
	clock     Clock
}

// NewService creates a Service.
func NewService(themes ThemeRepo, schedules ScheduleRepo, resolver *Resolver, clock Clock) *Service {
	return &Service{
		themes:    themes,
		schedules: schedules,
		resolver:  resolver,
		clock:     clock,
	}
}

// Today returns the current civil date.
func (s *Service) Today() time.Time {
	return DateOf(s.clock.Now())
}

// CreateTheme adds a theme to the catalog. The title must be non-blank.
func (s *Service) CreateTheme(ctx context.Context, title, description string) (*models.Theme, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("theme title is required: %w", store.ErrInvalid)
	}
	return s.themes.Create(strings.TrimSpace(title), description)
}

// UpdateTheme edits a theme; nil fields are left unchanged. When the
// active flag is touched the resolver refreshes, so disabling today's
// resolved theme clears it (the assignment row keeps existing but no
// longer resolves) and re-enabling brings it back.
func (s *Service) UpdateTheme(ctx context.Context, id uuid.UUID, title, description *string, active *bool) (*models.Theme, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, fmt.Errorf("theme title is required: %w", store.ErrInvalid)
	}

	th, err := s.themes.Update(id, title, description, active)
	if err != nil {
		return nil, err
	}

	if active != nil {
		if err := s.resolver.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return th, nil
}

// SetThemeActive toggles the active flag.
func (s *Service) SetThemeActive(ctx context.Context, id uuid.UUID, active bool) (*models.Theme, error) {
	return s.UpdateTheme(ctx, id, nil, nil, &active)
}

// ListThemes returns the catalog, most recently created first.
func (s *Service) ListThemes(activeOnly bool) ([]models.Theme, error) {
	return s.themes.List(activeOnly)
}

// ScheduleTheme assigns an active theme to a date, overwriting any existing
// assignment for that date. Unknown and disabled themes are rejected alike.
// When the date is today the resolver refreshes before returning.
func (s *Service) ScheduleTheme(ctx context.Context, themeID uuid.UUID, date time.Time) (*models.ScheduledTheme, error) {
	th, err := s.themes.FindActiveByID(themeID)
	if err != nil {
		return nil, err
	}
	if th == nil {
		return nil, fmt.Errorf("theme %s not found or inactive: %w", themeID, store.ErrNotFound)
	}

	day := DateOf(date)
	a, err := s.schedules.UpsertForDate(themeID, day)
	if err != nil {
		return nil, err
	}

	if day.Equal(s.Today()) {
		if err := s.resolver.Refresh(ctx); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// DeleteAssignment removes a calendar assignment. Deleting today's
// assignment refreshes the resolver immediately — the current theme may
// fall back to none without waiting for the next tick.
func (s *Service) DeleteAssignment(ctx context.Context, id uuid.UUID) error {
	a, err := s.schedules.FindByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("assignment %s: %w", id, store.ErrNotFound)
	}

	if err := s.schedules.Delete(id); err != nil {
		return err
	}

	if SameDate(a.ScheduledDate, s.Today()) {
		if err := s.resolver.Refresh(ctx); err != nil {
			return err
		}
	}
	return nil
}

// ListAssignments returns the calendar for an inclusive date range,
// ascending, with themes joined in.
func (s *Service) ListAssignments(from, to time.Time) ([]models.ScheduledThemeEntry, error) {
	return s.schedules.ListRange(DateOf(from), DateOf(to))
}

// ManuallyActivate schedules a theme for today, overwriting whatever was
// assigned. A soft-failure convenience for the admin quick action: unknown
// and inactive themes return false rather than an error.
func (s *Service) ManuallyActivate(ctx context.Context, themeID uuid.UUID) bool {
	if _, err := s.ScheduleTheme(ctx, themeID, s.Today()); err != nil {
		slog.Warn("manual theme activation failed", "theme_id", themeID, "error", err)
		return false
	}
	return true
}

// CurrentTheme returns today's resolved theme, or nil if none.
func (s *Service) CurrentTheme(ctx context.Context) (*models.Theme, error) {
	return s.resolver.Current(ctx)
}
