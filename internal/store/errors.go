// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Each table gets its own
// store struct holding a *sql.DB. Callers distinguish failure classes with
// errors.Is against the sentinels below; any other error from a store method
// is a transient persistence failure.
package store

import "errors"

var (
	// ErrNotFound marks operations that reference an unknown row, or a row
	// the operation is not allowed to see (e.g. an inactive theme where an
	// active one is required).
	ErrNotFound = errors.New("not found")

	// ErrInvalid marks rejected input, such as an empty theme title.
	ErrInvalid = errors.New("invalid input")
)
