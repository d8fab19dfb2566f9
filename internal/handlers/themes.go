// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/theme"
)

// Themes groups the admin theme catalog handlers.
type Themes struct {
	service *theme.Service
}

// NewThemes creates a new Themes handler group.
func NewThemes(service *theme.Service) *Themes {
	return &Themes{service: service}
}

// List returns the theme catalog, newest first. ?active=true filters to
// enabled themes only.
func (h *Themes) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active") == "true"

	themes, err := h.service.ListThemes(activeOnly)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	if themes == nil {
		themes = []models.Theme{}
	}
	respondJSON(w, http.StatusOK, themes)
}

// Create adds a theme to the catalog. New themes start active.
func (h *Themes) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateTheme(req.Title, req.Description); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	th, err := h.service.CreateTheme(r.Context(), req.Title, req.Description)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, th)
}

// Update edits a theme. Absent fields are left unchanged; toggling the
// active flag takes effect on today's resolved theme immediately.
func (h *Themes) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	var req struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Active      *bool   `json:"active"`
	}
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateThemePatch(req.Title, req.Description); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	th, err := h.service.UpdateTheme(r.Context(), id, req.Title, req.Description, req.Active)
	if err != nil {
		respondStoreError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, th)
}

// Activate schedules the theme for today, replacing today's assignment.
// Mirrors the admin "make this today's theme" quick action: failures are
// reported as a refusal rather than an error payload.
func (h *Themes) Activate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid theme id")
		return
	}

	if !h.service.ManuallyActivate(r.Context(), id) {
		respondJSON(w, http.StatusBadRequest, map[string]any{"activated": false})
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"activated": true})
}
