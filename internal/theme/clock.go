// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme implements the daily theme subsystem: the catalog and
// calendar service, the persisted current-theme resolver, and the midnight
// reset scheduler. All time handling goes through an injectable Clock so
// the midnight boundary is testable.
package theme

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Clock supplies the current time. Production code uses SystemClock; tests
// inject a fixed clock to pin "today".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location. The location
// decides where the midnight boundary falls.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a Clock reporting time in the given location.
func NewSystemClock(loc *time.Location) SystemClock {
	if loc == nil {
		loc = time.UTC
	}
	return SystemClock{loc: loc}
}

// Now returns the current time in the clock's location.
func (c SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// DateOf strips the time-of-day component, returning the civil date as a
// UTC midnight. Dates are compared and stored in this form regardless of
// the clock's location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether two instants fall on the same civil date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
