package cli

import (
	"context"
	"fmt"
	"os"
)

// Tickets lists the user's bookings with event context.
func (a *App) Tickets(ctx context.Context) error {
	bookings, err := a.bookings.ListMine(ctx)
	if err != nil {
		return err
	}
	if len(bookings) == 0 {
		printlnFn("No tickets yet.")
		return nil
	}
	for _, b := range bookings {
		t := a.view.Ticket(b)
		line := fmt.Sprintf("[%s] %s", t.ID, t.EventTitle)
		if t.Date != "" {
			line += "  " + t.Date + " " + t.Time
		}
		printlnFn(line)
		printlnFn(fmt.Sprintf("  %dx %s  %s  %s/%s", t.Quantity, t.TicketType, t.Price, t.BookingStatus, string(t.Status)))
	}
	return nil
}

// Save bookmarks an event.
func (a *App) Save(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}
	if err := a.bookings.SaveEvent(ctx, id); err != nil {
		return err
	}
	printlnFn("Saved.")
	return nil
}

// Saved lists bookmarked events.
func (a *App) Saved(ctx context.Context) error {
	events, err := a.bookings.ListSaved(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		printlnFn("No saved events.")
		return nil
	}
	for _, e := range events {
		printCard(a.view.EventCard(e))
	}
	return nil
}
