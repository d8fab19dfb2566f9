// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// fakes_test.go provides in-memory repository fakes and a fixed clock for
// the theme subsystem unit tests. The fakes mirror the store contracts:
// Find* returns nil on miss, mutations return store.ErrNotFound, and the
// calendar enforces one assignment per date.
package theme

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"dailyspin/internal/models"
	"dailyspin/internal/store"
)

// fixedClock pins "now" for tests.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time { return c.t }

// --- theme repo fake ---

type fakeThemeRepo struct {
	themes map[uuid.UUID]*models.Theme
	order  []uuid.UUID // creation order, oldest first
	err    error       // when set, every call fails with it
}

func newFakeThemeRepo() *fakeThemeRepo {
	return &fakeThemeRepo{themes: make(map[uuid.UUID]*models.Theme)}
}

func (f *fakeThemeRepo) Create(title, description string) (*models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	th := &models.Theme{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Active:      true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	f.themes[th.ID] = th
	f.order = append(f.order, th.ID)
	return copyTheme(th), nil
}

func (f *fakeThemeRepo) FindByID(id uuid.UUID) (*models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	return copyTheme(f.themes[id]), nil
}

func (f *fakeThemeRepo) FindActiveByID(id uuid.UUID) (*models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	th := f.themes[id]
	if th == nil || !th.Active {
		return nil, nil
	}
	return copyTheme(th), nil
}

func (f *fakeThemeRepo) List(activeOnly bool) ([]models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	var items []models.Theme
	// Newest first.
	for i := len(f.order) - 1; i >= 0; i-- {
		th := f.themes[f.order[i]]
		if activeOnly && !th.Active {
			continue
		}
		items = append(items, *th)
	}
	return items, nil
}

func (f *fakeThemeRepo) Update(id uuid.UUID, title, description *string, active *bool) (*models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	th := f.themes[id]
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
	return copyTheme(th), nil
}

func copyTheme(th *models.Theme) *models.Theme {
	if th == nil {
		return nil
	}
	c := *th
	return &c
}

// --- schedule repo fake ---

type fakeScheduleRepo struct {
	themes *fakeThemeRepo
	byID   map[uuid.UUID]*models.ScheduledTheme
	err    error
}

func newFakeScheduleRepo(themes *fakeThemeRepo) *fakeScheduleRepo {
	return &fakeScheduleRepo{
		themes: themes,
		byID:   make(map[uuid.UUID]*models.ScheduledTheme),
	}
}

func (f *fakeScheduleRepo) UpsertForDate(themeID uuid.UUID, date time.Time) (*models.ScheduledTheme, error) {
	if f.err != nil {
		return nil, f.err
	}
	day := DateOf(date)
	for _, a := range f.byID {
		if a.ScheduledDate.Equal(day) {
			a.ThemeID = themeID
			c := *a
			return &c, nil
		}
	}
	a := &models.ScheduledTheme{
		ID:            uuid.New(),
		ThemeID:       themeID,
		ScheduledDate: day,
		CreatedAt:     time.Now(),
	}
	f.byID[a.ID] = a
	c := *a
	return &c, nil
}

func (f *fakeScheduleRepo) FindByID(id uuid.UUID) (*models.ScheduledTheme, error) {
	if f.err != nil {
		return nil, f.err
	}
	a := f.byID[id]
	if a == nil {
		return nil, nil
	}
	c := *a
	return &c, nil
}

func (f *fakeScheduleRepo) Delete(id uuid.UUID) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return fmt.Errorf("assignment %s: %w", id, store.ErrNotFound)
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeScheduleRepo) ListRange(from, to time.Time) ([]models.ScheduledThemeEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	var entries []models.ScheduledThemeEntry
	for _, a := range f.byID {
		if a.ScheduledDate.Before(from) || a.ScheduledDate.After(to) {
			continue
		}
		th := f.themes.themes[a.ThemeID]
		if th == nil {
			continue
		}
		entries = append(entries, models.ScheduledThemeEntry{
			ID:            a.ID,
			ScheduledDate: a.ScheduledDate,
			Theme:         *th,
		})
	}
	// Insertion order is random (map); sort ascending by date.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].ScheduledDate.Before(entries[j-1].ScheduledDate); j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	return entries, nil
}

func (f *fakeScheduleRepo) FindThemeForDate(date time.Time) (*models.Theme, error) {
	if f.err != nil {
		return nil, f.err
	}
	day := DateOf(date)
	for _, a := range f.byID {
		if !a.ScheduledDate.Equal(day) {
			continue
		}
		th := f.themes.themes[a.ThemeID]
		if th == nil || !th.Active {
			return nil, nil
		}
		return copyTheme(th), nil
	}
	return nil, nil
}

// assignmentCount reports how many assignments exist for a date. Used to
// assert the one-per-date invariant.
func (f *fakeScheduleRepo) assignmentCount(date time.Time) int {
	day := DateOf(date)
	n := 0
	for _, a := range f.byID {
		if a.ScheduledDate.Equal(day) {
			n++
		}
	}
	return n
}

// --- settings repo fake ---

type fakeSettingRepo struct {
	values  map[string]string
	history []string // every value ever written to SettingCurrentTheme
	getErr  error
	setErr  error
}

func newFakeSettingRepo() *fakeSettingRepo {
	return &fakeSettingRepo{values: make(map[string]string)}
}

func (f *fakeSettingRepo) Get(key, fallback string) (string, error) {
	if f.getErr != nil {
		return fallback, f.getErr
	}
	if v, ok := f.values[key]; ok && v != "" {
		return v, nil
	}
	return fallback, nil
}

func (f *fakeSettingRepo) Set(key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	if key == SettingCurrentTheme {
		f.history = append(f.history, value)
	}
	return nil
}

// --- shared harness ---

type fixture struct {
	clock     *fixedClock
	themes    *fakeThemeRepo
	schedules *fakeScheduleRepo
	settings  *fakeSettingRepo
	resolver  *Resolver
	service   *Service
}

// newFixture wires the subsystem around fakes, pinned to the given time.
func newFixture(now time.Time) *fixture {
	clock := &fixedClock{t: now}
	themes := newFakeThemeRepo()
	schedules := newFakeScheduleRepo(themes)
	settings := newFakeSettingRepo()
	resolver := NewResolver(schedules, themes, settings, nil, clock)
	service := NewService(themes, schedules, resolver, clock)
	return &fixture{
		clock:     clock,
		themes:    themes,
		schedules: schedules,
		settings:  settings,
		resolver:  resolver,
		service:   service,
	}
}
