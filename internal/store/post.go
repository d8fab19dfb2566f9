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

// PostStore handles daily post database operations. The feed lock gate only
// reads existence here; the posting endpoints own the writes.
type PostStore struct {
	db *sql.DB
}

// NewPostStore creates a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, user_id, song_name, artist_name, track_id, album_image_url, track_url, note, theme_id, post_date, hidden, created_at`

func scanPost(scanner interface{ Scan(...any) error }) (*models.DailyPost, error) {
	var p models.DailyPost
	err := scanner.Scan(
		&p.ID, &p.UserID, &p.SongName, &p.ArtistName, &p.TrackID,
		&p.AlbumImageURL, &p.TrackURL, &p.Note, &p.ThemeID,
		&p.PostDate, &p.Hidden, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpsertForDate stores a user's post for a date. Posting twice on the same
// day replaces the track details of the existing post in place.
func (s *PostStore) UpsertForDate(p *models.DailyPost) (*models.DailyPost, error) {
	row := s.db.QueryRow(`
		INSERT INTO daily_posts
			(user_id, song_name, artist_name, track_id, album_image_url, track_url, note, theme_id, post_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, post_date)
		DO UPDATE SET
			song_name       = EXCLUDED.song_name,
			artist_name     = EXCLUDED.artist_name,
			track_id        = EXCLUDED.track_id,
			album_image_url = EXCLUDED.album_image_url,
			track_url       = EXCLUDED.track_url,
			note            = EXCLUDED.note,
			theme_id        = EXCLUDED.theme_id
		RETURNING `+postColumns,
		p.UserID, p.SongName, p.ArtistName, p.TrackID, p.AlbumImageURL,
		p.TrackURL, p.Note, p.ThemeID, p.PostDate,
	)
	saved, err := scanPost(row)
	if err != nil {
		return nil, fmt.Errorf("upsert post: %w", err)
	}
	return saved, nil
}

// FindByID retrieves a post by its UUID. Returns nil if not found.
func (s *PostStore) FindByID(id uuid.UUID) (*models.DailyPost, error) {
	row := s.db.QueryRow(`SELECT `+postColumns+` FROM daily_posts WHERE id = $1`, id)
	p, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

// Delete removes a post. Returns ErrNotFound if the id is unknown.
func (s *PostStore) Delete(id uuid.UUID) error {
	result, err := s.db.Exec(`DELETE FROM daily_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

// UpdateNote replaces the note on a post.
func (s *PostStore) UpdateNote(id uuid.UUID, note string) error {
	result, err := s.db.Exec(`UPDATE daily_posts SET note = $2 WHERE id = $1`, id, note)
	if err != nil {
		return fmt.Errorf("update post note: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

// SetHidden toggles a post's visibility in the shared feed.
func (s *PostStore) SetHidden(id uuid.UUID, hidden bool) error {
	result, err := s.db.Exec(`UPDATE daily_posts SET hidden = $2 WHERE id = $1`, id, hidden)
	if err != nil {
		return fmt.Errorf("set post hidden: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("post %s: %w", id, ErrNotFound)
	}
	return nil
}

// ExistsForUserOn reports whether the user has a post dated the given day.
// Hidden posts still count — hiding a post does not re-lock the feed.
func (s *PostStore) ExistsForUserOn(userID uuid.UUID, day time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM daily_posts WHERE user_id = $1 AND post_date = $2)`,
		userID, day,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("post exists for user: %w", err)
	}
	return exists, nil
}

// ListVisibleForDate returns all non-hidden posts for a date, newest first.
func (s *PostStore) ListVisibleForDate(day time.Time) ([]models.DailyPost, error) {
	rows, err := s.db.Query(`
		SELECT `+postColumns+`
		FROM daily_posts
		WHERE post_date = $1 AND hidden = FALSE
		ORDER BY created_at DESC`,
		day,
	)
	if err != nil {
		return nil, fmt.Errorf("list posts for date: %w", err)
	}
	defer rows.Close()

	var items []models.DailyPost
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}
