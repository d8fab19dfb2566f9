// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyPost is a user's song share for a single calendar date. The database
// enforces one post per user per date; posting again the same day replaces
// the track details in place.
type DailyPost struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	SongName      string     `json:"song_name"`
	ArtistName    string     `json:"artist_name"`
	TrackID       string     `json:"track_id"`
	AlbumImageURL string     `json:"album_image_url"`
	TrackURL      string     `json:"track_url"`
	Note          string     `json:"note"`
	ThemeID       *uuid.UUID `json:"theme_id"`
	PostDate      time.Time  `json:"post_date"`
	Hidden        bool       `json:"hidden"`
	CreatedAt     time.Time  `json:"created_at"`
}
