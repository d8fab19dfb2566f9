// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// AppSetting represents a single keyed configuration value. The resolved
// current theme and the last-reset marker live here as plain rows so they
// survive restarts.
type AppSetting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AppSettings is a convenience map for accessing settings by key.
type AppSettings map[string]string

// Get returns the value for a key, or the fallback if the key doesn't exist.
func (s AppSettings) Get(key, fallback string) string {
	if v, ok := s[key]; ok && v != "" {
		return v
	}
	return fallback
}
