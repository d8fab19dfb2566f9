// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package feed implements the per-user feed lock: the shared feed stays
// hidden until the user has contributed today's post.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/theme"
)

// PostRepo is the slice of the post store the gate reads. The gate never
// writes posts; it only checks existence. Satisfied by *store.PostStore.
type PostRepo interface {
	ExistsForUserOn(userID uuid.UUID, day time.Time) (bool, error)
}

// ThemeSource supplies today's resolved theme. Satisfied by *theme.Resolver.
type ThemeSource interface {
	Current(ctx context.Context) (*models.Theme, error)
}

var _ ThemeSource = (*theme.Resolver)(nil)

// LockStatus is the gate's verdict for one user. The theme is surfaced
// even while locked, so the client can advertise today's prompt.
type LockStatus struct {
	Locked bool          `json:"locked"`
	Theme  *models.Theme `json:"theme"`
}

// Gate decides per-user feed visibility. It holds no state between calls:
// lock status is recomputed from the post table on every check, so a user
// who deletes their only post for today transitions straight back to
// locked.
type Gate struct {
	posts  PostRepo
	themes ThemeSource
	clock  theme.Clock
}

// NewGate creates a Gate.
func NewGate(posts PostRepo, themes ThemeSource, clock theme.Clock) *Gate {
	return &Gate{posts: posts, themes: themes, clock: clock}
}

// Check reports whether the user's feed is locked and what today's theme
// is. A theme lookup failure degrades to a nil theme rather than failing
// the check; a post lookup failure fails the check, since the lock verdict
// itself would be a guess.
func (g *Gate) Check(ctx context.Context, userID uuid.UUID) (LockStatus, error) {
	today := theme.DateOf(g.clock.Now())

	posted, err := g.posts.ExistsForUserOn(userID, today)
	if err != nil {
		return LockStatus{}, fmt.Errorf("check feed lock: %w", err)
	}

	th, err := g.themes.Current(ctx)
	if err != nil {
		slog.Warn("current theme unavailable for lock check, reporting none", "user_id", userID, "error", err)
		th = nil
	}

	return LockStatus{Locked: !posted, Theme: th}, nil
}
