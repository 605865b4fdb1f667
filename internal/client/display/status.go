package display

import "time"

// Status is the derived upcoming/ongoing/past state of a ticket or event.
// It is never stored; it is recomputed from "now" against the event window.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusOngoing  Status = "ongoing"
	StatusPast     Status = "past"
)

// Events without an end time are assumed to run this long.
const defaultEventWindow = 4 * time.Hour

// DeriveStatus compares now against [start, end]. A zero end means
// start+4h.
func DeriveStatus(now, start, end time.Time) Status {
	if end.IsZero() {
		end = start.Add(defaultEventWindow)
	}
	switch {
	case now.Before(start):
		return StatusUpcoming
	case !now.After(end):
		return StatusOngoing
	default:
		return StatusPast
	}
}
