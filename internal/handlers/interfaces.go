// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/session"
)

// PostRepo is the slice of the post store the feed and posting handlers
// use. Satisfied by *store.PostStore.
type PostRepo interface {
	UpsertForDate(p *models.DailyPost) (*models.DailyPost, error)
	FindByID(id uuid.UUID) (*models.DailyPost, error)
	Delete(id uuid.UUID) error
	UpdateNote(id uuid.UUID, note string) error
	SetHidden(id uuid.UUID, hidden bool) error
	ListVisibleForDate(day time.Time) ([]models.DailyPost, error)
}

// UserRepo is the slice of the user store the auth and feed handlers use.
// Satisfied by *store.UserStore.
type UserRepo interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	CheckPassword(user *models.User, password string) bool
}

// TokenStore issues and revokes bearer sessions. Satisfied by
// *session.Store.
type TokenStore interface {
	Create(ctx context.Context, data *session.Data) (string, error)
	Destroy(ctx context.Context, r *http.Request) error
}
