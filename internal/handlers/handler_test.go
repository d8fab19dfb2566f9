// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go holds the shared fakes for handler tests: in-memory
// theme, calendar, and settings repositories behind a fixed clock, so the
// admin endpoints can be exercised without Postgres.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/feed"
	"dailyspin/internal/middleware"
	"dailyspin/internal/models"
	"dailyspin/internal/session"
	"dailyspin/internal/store"
	"dailyspin/internal/theme"
)

var handlerNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

type memThemeRepo struct {
	themes map[uuid.UUID]*models.Theme
	order  []uuid.UUID
}

func (m *memThemeRepo) Create(title, description string) (*models.Theme, error) {
	th := &models.Theme{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.themes[th.ID] = th
	m.order = append(m.order, th.ID)
	return th, nil
}

func (m *memThemeRepo) FindByID(id uuid.UUID) (*models.Theme, error) {
	return m.themes[id], nil
}

func (m *memThemeRepo) FindActiveByID(id uuid.UUID) (*models.Theme, error) {
	th := m.themes[id]
	if th == nil || !th.Active {
		return nil, nil
	}
	return th, nil
}

func (m *memThemeRepo) List(activeOnly bool) ([]models.Theme, error) {
	var items []models.Theme
	for i := len(m.order) - 1; i >= 0; i-- {
		th := m.themes[m.order[i]]
		if activeOnly && !th.Active {
			continue
		}
		items = append(items, *th)
	}
	return items, nil
}

func (m *memThemeRepo) Update(id uuid.UUID, title, description *string, active *bool) (*models.Theme, error) {
	th := m.themes[id]
	if th == nil {
		return nil, fmt.Errorf("theme %s: %w", id, store.ErrNotFound)
	}
	if title != nil {
		th.Title = *title
	}
	if description != nil {
		th.Description = *description
	}
	if active != nil {
		th.Active = *active
	}
	return th, nil
}

type memScheduleRepo struct {
	themes *memThemeRepo
	byID   map[uuid.UUID]*models.ScheduledTheme
}

func (m *memScheduleRepo) UpsertForDate(themeID uuid.UUID, date time.Time) (*models.ScheduledTheme, error) {
	day := theme.DateOf(date)
	for _, a := range m.byID {
		if a.ScheduledDate.Equal(day) {
			a.ThemeID = themeID
			return a, nil
		}
	}
	a := &models.ScheduledTheme{
		ID:            uuid.New(),
		ThemeID:       themeID,
		ScheduledDate: day,
		CreatedAt:     time.Now(),
	}
	m.byID[a.ID] = a
	return a, nil
}

func (m *memScheduleRepo) FindByID(id uuid.UUID) (*models.ScheduledTheme, error) {
	return m.byID[id], nil
}

func (m *memScheduleRepo) Delete(id uuid.UUID) error {
	if _, ok := m.byID[id]; !ok {
		return fmt.Errorf("assignment %s: %w", id, store.ErrNotFound)
	}
	delete(m.byID, id)
	return nil
}

func (m *memScheduleRepo) ListRange(from, to time.Time) ([]models.ScheduledThemeEntry, error) {
	var entries []models.ScheduledThemeEntry
	for _, a := range m.byID {
		if a.ScheduledDate.Before(from) || a.ScheduledDate.After(to) {
			continue
		}
		th := m.themes.themes[a.ThemeID]
		if th == nil {
			continue
		}
		entries = append(entries, models.ScheduledThemeEntry{
			ID:            a.ID,
			ScheduledDate: a.ScheduledDate,
			Theme:         *th,
		})
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].ScheduledDate.Before(entries[j-1].ScheduledDate); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	return entries, nil
}

func (m *memScheduleRepo) FindThemeForDate(date time.Time) (*models.Theme, error) {
	day := theme.DateOf(date)
	for _, a := range m.byID {
		if !a.ScheduledDate.Equal(day) {
			continue
		}
		th := m.themes.themes[a.ThemeID]
		if th == nil || !th.Active {
			return nil, nil
		}
		return th, nil
	}
	return nil, nil
}

type memSettingRepo struct {
	values map[string]string
}

func (m *memSettingRepo) Get(key, fallback string) (string, error) {
	if v, ok := m.values[key]; ok && v != "" {
		return v, nil
	}
	return fallback, nil
}

func (m *memSettingRepo) Set(key, value string) error {
	m.values[key] = value
	return nil
}

type memPostRepo struct {
	posts map[uuid.UUID]*models.DailyPost
	order []uuid.UUID // creation order, oldest first
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[uuid.UUID]*models.DailyPost)}
}

func (m *memPostRepo) UpsertForDate(p *models.DailyPost) (*models.DailyPost, error) {
	for _, existing := range m.posts {
		if existing.UserID == p.UserID && existing.PostDate.Equal(p.PostDate) {
			existing.SongName = p.SongName
			existing.ArtistName = p.ArtistName
			existing.TrackID = p.TrackID
			existing.AlbumImageURL = p.AlbumImageURL
			existing.TrackURL = p.TrackURL
			existing.Note = p.Note
			existing.ThemeID = p.ThemeID
			return existing, nil
		}
	}
	saved := *p
	saved.ID = uuid.New()
	saved.CreatedAt = time.Now()
	m.posts[saved.ID] = &saved
	m.order = append(m.order, saved.ID)
	return &saved, nil
}

func (m *memPostRepo) FindByID(id uuid.UUID) (*models.DailyPost, error) {
	return m.posts[id], nil
}

func (m *memPostRepo) Delete(id uuid.UUID) error {
	if _, ok := m.posts[id]; !ok {
		return fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	delete(m.posts, id)
	return nil
}

func (m *memPostRepo) UpdateNote(id uuid.UUID, note string) error {
	p, ok := m.posts[id]
	if !ok {
		return fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	p.Note = note
	return nil
}

func (m *memPostRepo) SetHidden(id uuid.UUID, hidden bool) error {
	p, ok := m.posts[id]
	if !ok {
		return fmt.Errorf("post %s: %w", id, store.ErrNotFound)
	}
	p.Hidden = hidden
	return nil
}

func (m *memPostRepo) ExistsForUserOn(userID uuid.UUID, day time.Time) (bool, error) {
	for _, p := range m.posts {
		if p.UserID == userID && p.PostDate.Equal(theme.DateOf(day)) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memPostRepo) ListVisibleForDate(day time.Time) ([]models.DailyPost, error) {
	var items []models.DailyPost
	// Newest first.
	for i := len(m.order) - 1; i >= 0; i-- {
		p, ok := m.posts[m.order[i]]
		if !ok || p.Hidden || !p.PostDate.Equal(theme.DateOf(day)) {
			continue
		}
		items = append(items, *p)
	}
	return items, nil
}

type memUserRepo struct {
	users     map[uuid.UUID]*models.User
	passwords map[uuid.UUID]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		users:     make(map[uuid.UUID]*models.User),
		passwords: make(map[uuid.UUID]string),
	}
}

func (m *memUserRepo) add(email, password, displayName string, role models.Role) *models.User {
	u := &models.User{
		ID:          uuid.New(),
		Email:       email,
		DisplayName: displayName,
		Role:        role,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.users[u.ID] = u
	m.passwords[u.ID] = password
	return u
}

func (m *memUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	return m.users[id], nil
}

func (m *memUserRepo) CheckPassword(user *models.User, password string) bool {
	return m.passwords[user.ID] == password
}

type memTokenStore struct {
	sessions map[string]*session.Data
	nextID   int
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{sessions: make(map[string]*session.Data)}
}

func (m *memTokenStore) Create(ctx context.Context, data *session.Data) (string, error) {
	m.nextID++
	token := fmt.Sprintf("token-%d", m.nextID)
	data.CreatedAt = time.Now()
	m.sessions[token] = data
	return token, nil
}

func (m *memTokenStore) Destroy(ctx context.Context, r *http.Request) error {
	delete(m.sessions, session.BearerToken(r))
	return nil
}

// withSession simulates the auth middleware: it injects the session into
// the request context so RequireAuth-protected handlers see a logged-in
// user.
func withSession(sess *session.Data) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.SessionKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func memberSession(u *models.User) *session.Data {
	return &session.Data{
		UserID:      u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        string(u.Role),
	}
}

// newTestService wires a theme.Service over the in-memory fakes, pinned to
// handlerNow.
func newTestService() (*theme.Service, *memThemeRepo, *memScheduleRepo, *memSettingRepo) {
	service, _, _, _, env := newTestEnv()
	return service, env.themes, env.schedules, env.settings
}

// testEnv bundles the full fake-backed wiring for feed and post handler
// tests.
type testEnv struct {
	themes    *memThemeRepo
	schedules *memScheduleRepo
	settings  *memSettingRepo
	posts     *memPostRepo
	users     *memUserRepo
	gate      *feed.Gate
}

func newTestEnv() (*theme.Service, *feed.Gate, *memPostRepo, *memUserRepo, *testEnv) {
	themes := &memThemeRepo{themes: make(map[uuid.UUID]*models.Theme)}
	schedules := &memScheduleRepo{themes: themes, byID: make(map[uuid.UUID]*models.ScheduledTheme)}
	settings := &memSettingRepo{values: make(map[string]string)}
	posts := newMemPostRepo()
	users := newMemUserRepo()
	clock := fixedClock{t: handlerNow}

	resolver := theme.NewResolver(schedules, themes, settings, nil, clock)
	service := theme.NewService(themes, schedules, resolver, clock)
	gate := feed.NewGate(posts, resolver, clock)

	env := &testEnv{
		themes:    themes,
		schedules: schedules,
		settings:  settings,
		posts:     posts,
		users:     users,
		gate:      gate,
	}
	return service, gate, posts, users, env
}
