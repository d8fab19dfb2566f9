// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledTheme assigns a theme to a calendar date. At most one assignment
// exists per date; re-scheduling a date overwrites the previous assignment.
type ScheduledTheme struct {
	ID            uuid.UUID `json:"id"`
	ThemeID       uuid.UUID `json:"theme_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	CreatedAt     time.Time `json:"created_at"`
}

// ScheduledThemeEntry is an assignment joined with its theme, as returned by
// calendar range listings.
type ScheduledThemeEntry struct {
	ID            uuid.UUID `json:"id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Theme         Theme     `json:"theme"`
}
