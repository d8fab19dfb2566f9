// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"dailyspin/internal/feed"
	"dailyspin/internal/middleware"
	"dailyspin/internal/models"
	"dailyspin/internal/theme"
)

// Feed groups the member-facing theme and feed handlers.
type Feed struct {
	gate      *feed.Gate
	posts     PostRepo
	service   *theme.Service
	userStore UserRepo
}

// NewFeed creates a new Feed handler group.
func NewFeed(gate *feed.Gate, posts PostRepo, service *theme.Service, userStore UserRepo) *Feed {
	return &Feed{
		gate:      gate,
		posts:     posts,
		service:   service,
		userStore: userStore,
	}
}

// CurrentTheme returns today's theme. 404 when no theme is scheduled —
// clients show a "no theme today" state, not an error.
func (h *Feed) CurrentTheme(w http.ResponseWriter, r *http.Request) {
	th, err := h.service.CurrentTheme(r.Context())
	if err != nil {
		slog.Error("current theme lookup failed", "error", err)
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}
	if th == nil {
		respondError(w, http.StatusNotFound, "no theme scheduled for today")
		return
	}
	respondJSON(w, http.StatusOK, th)
}

// LockStatus reports whether the caller's feed is locked and what today's
// theme is. Clients poll this to drive the "post to unlock" screen.
func (h *Feed) LockStatus(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	status, err := h.gate.Check(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("lock status check failed", "user_id", sess.UserID, "error", err)
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}
	respondJSON(w, http.StatusOK, status)
}

// feedEntry is a post joined with its author's public profile.
type feedEntry struct {
	models.DailyPost
	AuthorName string `json:"author_name"`
}

// Today returns the shared feed for today. While the caller's feed is
// locked the posts are withheld and the lock descriptor is returned
// instead, so the client renders the gate screen from the same payload.
func (h *Feed) Today(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	status, err := h.gate.Check(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("feed lock check failed", "user_id", sess.UserID, "error", err)
		respondError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	if status.Locked {
		respondJSON(w, http.StatusOK, map[string]any{
			"locked": true,
			"theme":  status.Theme,
		})
		return
	}

	posts, err := h.posts.ListVisibleForDate(h.service.Today())
	if err != nil {
		respondStoreError(w, err)
		return
	}

	entries := make([]feedEntry, 0, len(posts))
	for _, p := range posts {
		entry := feedEntry{DailyPost: p}
		author, err := h.userStore.FindByID(p.UserID)
		if err != nil {
			respondStoreError(w, err)
			return
		}
		if author != nil {
			entry.AuthorName = author.DisplayName
		}
		entries = append(entries, entry)
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"locked": false,
		"theme":  status.Theme,
		"posts":  entries,
	})
}
