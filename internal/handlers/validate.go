package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for theme and post fields.
const (
	maxThemeTitleLen = 200
	maxThemeDescLen  = 1_000
	maxSongFieldLen  = 300
	maxURLLen        = 2_000
	maxNoteLen       = 1_000
)

// validateTheme checks theme inputs and returns the first error found.
func validateTheme(title, description string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return "Theme title is required."
	}
	if utf8.RuneCountInString(title) > maxThemeTitleLen {
		return "Theme title is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(description) > maxThemeDescLen {
		return "Theme description is too long (max 1,000 characters)."
	}
	return ""
}

// validateThemePatch checks a partial theme update, validating only the
// fields actually provided.
func validateThemePatch(title, description *string) string {
	if title != nil {
		if strings.TrimSpace(*title) == "" {
			return "Theme title is required."
		}
		if utf8.RuneCountInString(*title) > maxThemeTitleLen {
			return "Theme title is too long (max 200 characters)."
		}
	}
	if description != nil && utf8.RuneCountInString(*description) > maxThemeDescLen {
		return "Theme description is too long (max 1,000 characters)."
	}
	return ""
}

// validatePost checks song post inputs and returns the first error found.
func validatePost(songName, artistName, albumImageURL, trackURL, note string) string {
	if strings.TrimSpace(songName) == "" {
		return "Song name is required."
	}
	if utf8.RuneCountInString(songName) > maxSongFieldLen {
		return "Song name is too long (max 300 characters)."
	}
	if strings.TrimSpace(artistName) == "" {
		return "Artist name is required."
	}
	if utf8.RuneCountInString(artistName) > maxSongFieldLen {
		return "Artist name is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(albumImageURL) > maxURLLen {
		return "Album image URL is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(trackURL) > maxURLLen {
		return "Track URL is too long (max 2,000 characters)."
	}
	if utf8.RuneCountInString(note) > maxNoteLen {
		return "Note is too long (max 1,000 characters)."
	}
	return ""
}
