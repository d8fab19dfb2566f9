// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
)

// ScheduleStore manages the date-to-theme assignment calendar. The table
// carries a unique constraint on scheduled_date, so a date can never hold
// more than one assignment.
type ScheduleStore struct {
	db *sql.DB
}

// NewScheduleStore creates a new ScheduleStore.
func NewScheduleStore(db *sql.DB) *ScheduleStore {
	return &ScheduleStore{db: db}
}

const scheduleColumns = `id, theme_id, scheduled_date, created_at`

func scanAssignment(scanner interface{ Scan(...any) error }) (*models.ScheduledTheme, error) {
	var a models.ScheduledTheme
	err := scanner.Scan(&a.ID, &a.ThemeID, &a.ScheduledDate, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpsertForDate assigns a theme to a date. If the date already has an
// assignment its theme_id is overwritten in place; no history is kept.
func (s *ScheduleStore) UpsertForDate(themeID uuid.UUID, date time.Time) (*models.ScheduledTheme, error) {
	row := s.db.QueryRow(`
		INSERT INTO scheduled_themes (theme_id, scheduled_date)
		VALUES ($1, $2)
		ON CONFLICT (scheduled_date)
		DO UPDATE SET theme_id = EXCLUDED.theme_id
		RETURNING `+scheduleColumns,
		themeID, date,
	)
	a, err := scanAssignment(row)
	if err != nil {
		return nil, fmt.Errorf("upsert assignment: %w", err)
	}
	return a, nil
}

// FindByID retrieves an assignment by its UUID. Returns nil if not found.
func (s *ScheduleStore) FindByID(id uuid.UUID) (*models.ScheduledTheme, error) {
	row := s.db.QueryRow(`SELECT `+scheduleColumns+` FROM scheduled_themes WHERE id = $1`, id)
	a, err := scanAssignment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find assignment by id: %w", err)
	}
	return a, nil
}

// Delete removes an assignment. Returns ErrNotFound if the id is unknown.
func (s *ScheduleStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM scheduled_themes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("assignment %s: %w", id, ErrNotFound)
	}
	return nil
}

// ListRange returns assignments with their themes for the inclusive date
// range, ascending by date.
func (s *ScheduleStore) ListRange(from, to time.Time) ([]models.ScheduledThemeEntry, error) {
	rows, err := s.db.Query(`
		SELECT st.id, st.scheduled_date, `+prefixedThemeColumns("t")+`
		FROM scheduled_themes st
		JOIN themes t ON st.theme_id = t.id
		WHERE st.scheduled_date BETWEEN $1 AND $2
		ORDER BY st.scheduled_date ASC`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var items []models.ScheduledThemeEntry
	for rows.Next() {
		var e models.ScheduledThemeEntry
		err := rows.Scan(
			&e.ID, &e.ScheduledDate,
			&e.Theme.ID, &e.Theme.Title, &e.Theme.Description, &e.Theme.Active,
			&e.Theme.CreatedAt, &e.Theme.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan assignment entry: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// FindThemeForDate returns the active theme assigned to the given date, or
// nil if the date is unassigned or its theme has been disabled. This is the
// join the resolver persists.
func (s *ScheduleStore) FindThemeForDate(date time.Time) (*models.Theme, error) {
	row := s.db.QueryRow(`
		SELECT `+prefixedThemeColumns("t")+`
		FROM scheduled_themes st
		JOIN themes t ON st.theme_id = t.id
		WHERE st.scheduled_date = $1 AND t.active = TRUE
		LIMIT 1`,
		date,
	)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme for date: %w", err)
	}
	return t, nil
}

// prefixedThemeColumns qualifies the theme column list with a table alias
// for use in joins.
func prefixedThemeColumns(alias string) string {
	return alias + `.id, ` + alias + `.title, ` + alias + `.description, ` +
		alias + `.active, ` + alias + `.created_at, ` + alias + `.updated_at`
}
