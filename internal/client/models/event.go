// Package models defines the client-side records exchanged with the event
// backend. Field types are deliberately tolerant: the API is not consistent
// about timestamps, identifiers, or attendee shapes, and a listing must
// render even when a single record is odd.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// Visibility controls who can discover an event.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// Event categories accepted by the backend.
var Categories = []string{
	"music", "sports", "arts", "food", "business",
	"technology", "education", "other",
}

// EventTime decodes the backend's timestamp strings, tolerating empty
// strings and a few date-only layouts. A missing or unparseable value
// becomes the zero time.
type EventTime struct {
	time.Time
}

var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func (t *EventTime) UnmarshalJSON(b []byte) error {
	t.Time = time.Time{}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range eventTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return nil
}

// AttendeeCount decodes from either a numeric count or an attendee array
// (in which case the length is used). Anything else counts as zero.
type AttendeeCount int

func (a *AttendeeCount) UnmarshalJSON(b []byte) error {
	*a = 0

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 {
		return nil
	}
	if trimmed[0] == '[' {
		var list []json.RawMessage
		if err := json.Unmarshal(trimmed, &list); err == nil {
			*a = AttendeeCount(len(list))
		}
		return nil
	}
	var n int
	if err := json.Unmarshal(trimmed, &n); err == nil {
		*a = AttendeeCount(n)
	}
	return nil
}

// Event is a server-owned record; the client never mutates one directly.
type Event struct {
	ID           string        `json:"_id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	StartTime    EventTime     `json:"startTime"`
	EndTime      EventTime     `json:"endTime"`
	Location     string        `json:"location"`
	Venue        string        `json:"venue"`
	Category     string        `json:"category"`
	EventType    string        `json:"eventType"` // "physical" or "online"
	Price        Price         `json:"price"`
	Image        string        `json:"image"`
	Tags         []string      `json:"tags"`
	Visibility   Visibility    `json:"visibility"`
	Attendees    AttendeeCount `json:"attendees"`
	MaxAttendees int           `json:"maxAttendees"`
}

// UnmarshalJSON accepts the identifier under either "_id" (the usual form)
// or "id" (a few older endpoints).
func (e *Event) UnmarshalJSON(b []byte) error {
	type alias Event
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(e)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if e.ID == "" {
		e.ID = aux.AltID
	}
	return nil
}
