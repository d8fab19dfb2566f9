// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// theme.go provides a Valkey-backed read cache for the resolved current
// theme. The feed lock check runs on every poll from every client, so the
// theme lookup behind it is cached with a short TTL and invalidated
// whenever the resolver refreshes. The database settings row remains the
// source of the resolved value; this cache only absorbs read load.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"dailyspin/internal/models"
)

const (
	// currentThemeKey is the Valkey key for the cached current theme.
	currentThemeKey = "theme:current"

	// DefaultThemeTTL bounds staleness if an invalidation is ever missed.
	DefaultThemeTTL = time.Minute
)

// ThemeCache caches the resolved current theme in Valkey. A nil *ThemeCache
// is valid and behaves as a cache that always misses, so callers don't need
// to special-case deployments without Valkey.
type ThemeCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewThemeCache creates a theme cache backed by the given Valkey client.
func NewThemeCache(client *redis.Client, ttl time.Duration) *ThemeCache {
	if ttl == 0 {
		ttl = DefaultThemeTTL
	}
	return &ThemeCache{client: client, ttl: ttl}
}

// Get returns the cached current theme. The second return is false on miss
// or error; cache failures never surface to the request path.
func (tc *ThemeCache) Get(ctx context.Context) (*models.Theme, bool) {
	if tc == nil {
		return nil, false
	}

	payload, err := tc.client.Get(ctx, currentThemeKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("theme cache get error", "error", err)
		return nil, false
	}

	var th models.Theme
	if err := json.Unmarshal(payload, &th); err != nil {
		slog.Warn("theme cache unmarshal error", "error", err)
		return nil, false
	}
	return &th, true
}

// Set stores the current theme with the configured TTL. A nil theme is not
// cached — "no theme" is cheap to recompute and caching it would delay a
// freshly scheduled theme from appearing.
func (tc *ThemeCache) Set(ctx context.Context, th *models.Theme) {
	if tc == nil || th == nil {
		return
	}

	payload, err := json.Marshal(th)
	if err != nil {
		slog.Warn("theme cache marshal error", "error", err)
		return
	}
	if err := tc.client.Set(ctx, currentThemeKey, payload, tc.ttl).Err(); err != nil {
		slog.Warn("theme cache set error", "error", err)
	}
}

// Invalidate drops the cached theme. Called on every resolver refresh.
func (tc *ThemeCache) Invalidate(ctx context.Context) {
	if tc == nil {
		return
	}
	if err := tc.client.Del(ctx, currentThemeKey).Err(); err != nil {
		slog.Warn("theme cache invalidate error", "error", err)
	}
}
