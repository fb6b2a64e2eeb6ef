// Package duration holds the shared elapsed-time and overdue arithmetic used
// by every screen that renders lifecycle ages. The formatting here is golden:
// print templates compare against it verbatim.
package duration

import (
	"fmt"
	"time"
)

// DefaultGraceDays is how long an unresolved entity may stay open before it
// starts counting as overdue.
const DefaultGraceDays = 21

// Elapsed is a non-negative interval split into calendar-ish components.
type Elapsed struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Between computes the elapsed interval from start to end. Inverted intervals
// collapse to zero.
func Between(start, end time.Time) Elapsed {
	d := end.Sub(start)
	if d < 0 {
		d = 0
	}
	return Elapsed{
		Days:    int(d / (24 * time.Hour)),
		Hours:   int(d % (24 * time.Hour) / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
	}
}

// Since is Between with an open end: unresolved records measure against now.
func Since(start, now time.Time) Elapsed {
	return Between(start, now)
}

// String renders the interval for display. Once days are shown minutes are
// dropped; once hours are shown seconds never appear.
func (e Elapsed) String() string {
	switch {
	case e.Days > 0:
		return fmt.Sprintf("%d يوم %d ساعة", e.Days, e.Hours)
	case e.Hours > 0:
		return fmt.Sprintf("%d ساعة %d دقيقة", e.Hours, e.Minutes)
	default:
		return fmt.Sprintf("%d دقيقة", e.Minutes)
	}
}

// OverdueDays counts how many whole days past the grace period the record has
// been open. Callers must not invoke this for terminal statuses; there the
// notion of overdue does not apply at all.
func OverdueDays(createdAt, now time.Time, graceDays int) int {
	overdue := Between(createdAt, now).Days - graceDays
	if overdue < 0 {
		return 0
	}
	return overdue
}
