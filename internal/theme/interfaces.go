// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import (
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
)

// ThemeRepo is the slice of the theme store the subsystem depends on.
// Satisfied by *store.ThemeStore.
type ThemeRepo interface {
	Create(title, description string) (*models.Theme, error)
	FindByID(id uuid.UUID) (*models.Theme, error)
	FindActiveByID(id uuid.UUID) (*models.Theme, error)
	List(activeOnly bool) ([]models.Theme, error)
	Update(id uuid.UUID, title, description *string, active *bool) (*models.Theme, error)
}

// ScheduleRepo is the slice of the assignment calendar store the subsystem
// depends on. Satisfied by *store.ScheduleStore.
type ScheduleRepo interface {
	UpsertForDate(themeID uuid.UUID, date time.Time) (*models.ScheduledTheme, error)
	FindByID(id uuid.UUID) (*models.ScheduledTheme, error)
	Delete(id uuid.UUID) error
	ListRange(from, to time.Time) ([]models.ScheduledThemeEntry, error)
	FindThemeForDate(date time.Time) (*models.Theme, error)
}

// SettingRepo is the keyed settings slice holding the resolved current
// theme and the last-reset marker. Satisfied by *store.AppSettingStore.
type SettingRepo interface {
	Get(key, fallback string) (string, error)
	Set(key, value string) error
}
