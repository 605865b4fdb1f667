package display

import "github.com/eventlane/eventlane/internal/client/models"

// EventCard is the flat listing view of an event.
type EventCard struct {
	ID        string
	Title     string
	Date      string
	Time      string
	Venue     string
	Price     string
	ImageURL  string
	Attendees int
}

// TierView is one seat tier ready for rendering.
type TierView struct {
	Name  string
	Price string
}

// EventDetail extends the card with the fields the detail screen shows.
type EventDetail struct {
	EventCard
	Description string
	Category    string
	Location    string
	Visibility  string
	Tags        []string
	Tiers       []TierView
	Status      Status
}

// TicketView is a booking shaped for the tickets screen.
type TicketView struct {
	ID            string
	EventTitle    string
	Date          string
	Time          string
	TicketType    string
	Quantity      int
	Price         string
	Status        Status
	BookingStatus string
}

func (f *Formatter) EventCard(e models.Event) EventCard {
	date, clock := FormatSchedule(e.StartTime.Time, e.EndTime.Time)
	return EventCard{
		ID:        e.ID,
		Title:     e.Title,
		Date:      date,
		Time:      clock,
		Venue:     e.Venue,
		Price:     f.Price(e.Price),
		ImageURL:  f.ImageURL(e.Image),
		Attendees: int(e.Attendees),
	}
}

func (f *Formatter) EventDetail(e models.Event) EventDetail {
	tiers := make([]TierView, 0, len(e.Price.Tiers))
	for _, t := range e.Price.Tiers {
		tiers = append(tiers, TierView{Name: t.Name, Price: f.CurrencySymbol + t.Price.String()})
	}
	return EventDetail{
		EventCard:   f.EventCard(e),
		Description: e.Description,
		Category:    e.Category,
		Location:    e.Location,
		Visibility:  string(e.Visibility),
		Tags:        e.Tags,
		Tiers:       tiers,
		Status:      DeriveStatus(f.now(), e.StartTime.Time, e.EndTime.Time),
	}
}

// Ticket shapes a booking for display. Event times come from the embedded
// event record when the backend included one.
func (f *Formatter) Ticket(b models.Booking) TicketView {
	v := TicketView{
		ID:            b.ID,
		TicketType:    b.TicketType,
		Quantity:      b.Quantity,
		BookingStatus: string(b.Status),
	}
	if b.Price.IsZero() {
		v.Price = "Free"
	} else {
		v.Price = f.CurrencySymbol + b.Price.String()
	}
	if b.Event != nil {
		v.EventTitle = b.Event.Title
		v.Date, v.Time = FormatSchedule(b.Event.StartTime.Time, b.Event.EndTime.Time)
		v.Status = DeriveStatus(f.now(), b.Event.StartTime.Time, b.Event.EndTime.Time)
	}
	return v
}
