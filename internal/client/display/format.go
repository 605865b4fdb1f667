// Package display converts raw server records into view-ready fields:
// formatted date/time strings, a resolved image URL, and a display price.
// Every screen renders through these transformers so the three price shapes
// and the four image-reference shapes are handled in exactly one place.
package display

import (
	"strings"
	"time"

	"github.com/eventlane/eventlane/internal/client/models"
)

// Formatter carries the few settings display rules depend on. Now is a
// test seam; nil means time.Now.
type Formatter struct {
	APIHost          string
	CurrencySymbol   string
	PlaceholderImage string
	Now              func() time.Time
}

func (f *Formatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// FormatDate renders "Jun 1, 2026".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatClock renders 12-hour "7:30 PM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatSchedule returns the date line and the time line for an event.
// With an end time the time line reads "7:30 PM - 10:00 PM".
func FormatSchedule(start, end time.Time) (string, string) {
	if start.IsZero() {
		return "", ""
	}
	clock := FormatClock(start)
	if !end.IsZero() {
		clock = clock + " - " + FormatClock(end)
	}
	return FormatDate(start), clock
}

// Price renders the display string for any of the three price shapes:
// minimum tier price for a non-empty tier list, the flat amount, or the
// pass-through label, falling back to "Free".
func (f *Formatter) Price(p models.Price) string {
	switch p.Kind {
	case models.PriceTiered:
		if min, ok := p.MinTier(); ok {
			return f.CurrencySymbol + min.Price.String()
		}
		return "Free"
	case models.PriceFlat:
		return f.CurrencySymbol + p.Flat.String()
	default:
		if p.Label != "" {
			return p.Label
		}
		return "Free"
	}
}

// ImageURL resolves an image reference to something fetchable. Inline
// base64 data and absolute URLs pass through untouched; server-relative
// paths get the API host (with any /api suffix stripped) prepended; a
// missing reference resolves to the placeholder.
func (f *Formatter) ImageURL(ref string) string {
	switch {
	case ref == "":
		return f.PlaceholderImage
	case strings.HasPrefix(ref, "data:image"):
		return ref
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	case strings.HasPrefix(ref, "/"):
		host := strings.TrimSuffix(strings.TrimRight(f.APIHost, "/"), "/api")
		return host + ref
	default:
		return ref
	}
}
