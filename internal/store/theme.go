// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"dailyspin/internal/models"
)

// ThemeStore handles all theme catalog database operations.
type ThemeStore struct {
	db *sql.DB
}

// NewThemeStore creates a new ThemeStore.
func NewThemeStore(db *sql.DB) *ThemeStore {
	return &ThemeStore{db: db}
}

// themeColumns lists the columns selected in theme queries.
const themeColumns = `id, title, description, active, created_at, updated_at`

// scanTheme scans a theme row from the result set.
func scanTheme(scanner interface{ Scan(...any) error }) (*models.Theme, error) {
	var t models.Theme
	err := scanner.Scan(&t.ID, &t.Title, &t.Description, &t.Active, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Create inserts a new theme and returns it with the generated ID.
// New themes start active.
func (s *ThemeStore) Create(title, description string) (*models.Theme, error) {
	row := s.db.QueryRow(`
		INSERT INTO themes (title, description)
		VALUES ($1, $2)
		RETURNING `+themeColumns,
		title, description,
	)
	t, err := scanTheme(row)
	if err != nil {
		return nil, fmt.Errorf("create theme: %w", err)
	}
	return t, nil
}

// FindByID retrieves a theme by its UUID. Returns nil if not found.
func (s *ThemeStore) FindByID(id uuid.UUID) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1`, id)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find theme by id: %w", err)
	}
	return t, nil
}

// FindActiveByID retrieves a theme only if it exists and is active.
// Returns nil for unknown and for disabled themes alike.
func (s *ThemeStore) FindActiveByID(id uuid.UUID) (*models.Theme, error) {
	row := s.db.QueryRow(`SELECT `+themeColumns+` FROM themes WHERE id = $1 AND active = TRUE`, id)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find active theme by id: %w", err)
	}
	return t, nil
}

// List returns themes ordered by creation date descending. When activeOnly
// is set, disabled themes are excluded.
func (s *ThemeStore) List(activeOnly bool) ([]models.Theme, error) {
	query := `SELECT ` + themeColumns + ` FROM themes`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list themes: %w", err)
	}
	defer rows.Close()

	var items []models.Theme
	for rows.Next() {
		t, err := scanTheme(rows)
		if err != nil {
			return nil, fmt.Errorf("scan theme: %w", err)
		}
		items = append(items, *t)
	}
	return items, rows.Err()
}

// Update modifies a theme. Nil fields are left unchanged. Returns the
// updated row, or ErrNotFound if the id is unknown.
func (s *ThemeStore) Update(id uuid.UUID, title, description *string, active *bool) (*models.Theme, error) {
	row := s.db.QueryRow(`
		UPDATE themes SET
			title       = COALESCE($2, title),
			description = COALESCE($3, description),
			active      = COALESCE($4, active),
			updated_at  = NOW()
		WHERE id = $1
		RETURNING `+themeColumns,
		id, title, description, active,
	)
	t, err := scanTheme(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("theme %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("update theme: %w", err)
	}
	return t, nil
}
