// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/theme"
)

// defaultCalendarWindow is the range List shows when no bounds are given.
const defaultCalendarWindow = 30 // days

// Schedule groups the admin theme calendar handlers.
type Schedule struct {
	service *theme.Service
}

// NewSchedule creates a new Schedule handler group.
func NewSchedule(service *theme.Service) *Schedule {
	return &Schedule{service: service}
}

// Create assigns a theme to a date. An existing assignment for the date is
// overwritten; scheduling for today changes the current theme immediately.
func (h *Schedule) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ThemeID string `json:"theme_id"`
		Date    string `json:"date"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}

	themeID, err := uuid.Parse(req.ThemeID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid theme id")
		return
	}
	date, err := time.Parse(theme.DateLayout, req.Date)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	a, err := h.service.ScheduleTheme(r.Context(), themeID, date)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, a)
}

// List returns the calendar for an inclusive date range, ascending. Bounds
// come from ?from= and ?to=; the default window is today through thirty
// days out.
func (h *Schedule) List(w http.ResponseWriter, r *http.Request) {
	today := h.service.Today()
	from, to := today, today.AddDate(0, 0, defaultCalendarWindow)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, err := time.Parse(theme.DateLayout, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid from date, expected YYYY-MM-DD")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, err := time.Parse(theme.DateLayout, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid to date, expected YYYY-MM-DD")
			return
		}
		to = parsed
	}
	if to.Before(from) {
		respondError(w, http.StatusBadRequest, "to date is before from date")
		return
	}

	entries, err := h.service.ListAssignments(from, to)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if entries == nil {
		entries = []models.ScheduledThemeEntry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// Delete removes a calendar assignment. Removing today's assignment clears
// the current theme right away.
func (h *Schedule) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}

	if err := h.service.DeleteAssignment(r.Context(), id); err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
