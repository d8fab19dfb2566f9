// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dailyspin/internal/middleware"
	"dailyspin/internal/models"
	"dailyspin/internal/theme"
)

// Posts groups the song posting handlers.
type Posts struct {
	posts   PostRepo
	service *theme.Service
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts PostRepo, service *theme.Service) *Posts {
	return &Posts{posts: posts, service: service}
}

// Create publishes the caller's song for today, unlocking their feed.
// Posting again the same day replaces the earlier pick. The post is stamped
// with today's resolved theme; with no theme scheduled it is posted
// unthemed.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req struct {
		SongName      string `json:"song_name"`
		ArtistName    string `json:"artist_name"`
		TrackID       string `json:"track_id"`
		AlbumImageURL string `json:"album_image_url"`
		TrackURL      string `json:"track_url"`
		Note          string `json:"note"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePost(req.SongName, req.ArtistName, req.AlbumImageURL, req.TrackURL, req.Note); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	var themeID *uuid.UUID
	th, err := h.service.CurrentTheme(r.Context())
	if err != nil {
		// Post anyway, unthemed. Losing the stamp beats blocking the share.
		slog.Warn("current theme unavailable while posting", "user_id", sess.UserID, "error", err)
	} else if th != nil {
		themeID = &th.ID
	}

	post, err := h.posts.UpsertForDate(&models.DailyPost{
		UserID:        sess.UserID,
		SongName:      req.SongName,
		ArtistName:    req.ArtistName,
		TrackID:       req.TrackID,
		AlbumImageURL: req.AlbumImageURL,
		TrackURL:      req.TrackURL,
		Note:          req.Note,
		ThemeID:       themeID,
		PostDate:      h.service.Today(),
	})
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, post)
}

// Delete removes one of the caller's posts. Deleting today's post re-locks
// the feed, which the response calls out so the client can route back to
// the gate screen.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	post, ok := h.ownPost(w, r, sess.UserID)
	if !ok {
		return
	}

	if err := h.posts.Delete(post.ID); err != nil {
		respondStoreError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status":      "deleted",
		"feed_locked": theme.SameDate(post.PostDate, h.service.Today()),
	})
}

// UpdateNote replaces the note on one of the caller's posts.
func (h *Posts) UpdateNote(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	post, ok := h.ownPost(w, r, sess.UserID)
	if !ok {
		return
	}

	var req struct {
		Note string `json:"note"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Note) > maxNoteLen {
		respondError(w, http.StatusBadRequest, "Note is too long (max 1,000 characters).")
		return
	}

	if err := h.posts.UpdateNote(post.ID, req.Note); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// SetHidden toggles a post's visibility in the shared feed. Hiding does not
// re-lock the feed; the post still counts as today's contribution.
func (h *Posts) SetHidden(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	post, ok := h.ownPost(w, r, sess.UserID)
	if !ok {
		return
	}

	var req struct {
		Hidden bool `json:"hidden"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.posts.SetHidden(post.ID, req.Hidden); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "updated", "hidden": req.Hidden})
}

// ownPost loads the post in the URL and verifies the caller owns it.
// Writes the error response and returns ok=false otherwise. Foreign posts
// read as 404 rather than 403 to avoid confirming they exist.
func (h *Posts) ownPost(w http.ResponseWriter, r *http.Request, userID uuid.UUID) (*models.DailyPost, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid post id")
		return nil, false
	}

	post, err := h.posts.FindByID(id)
	if err != nil {
		respondStoreError(w, err)
		return nil, false
	}
	if post == nil || post.UserID != userID {
		respondError(w, http.StatusNotFound, "post not found")
		return nil, false
	}
	return post, true
}
