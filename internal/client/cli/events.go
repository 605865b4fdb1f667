package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/eventlane/eventlane/internal/client/display"
	"github.com/eventlane/eventlane/internal/client/models"
)

func printCard(c display.EventCard) {
	printlnFn(fmt.Sprintf("[%s] %s", c.ID, c.Title))
	if c.Date != "" {
		printlnFn("  " + c.Date + "  " + c.Time)
	}
	if c.Venue != "" {
		printlnFn("  " + c.Venue)
	}
	printlnFn(fmt.Sprintf("  %s  (%d attending)", c.Price, c.Attendees))
}

// Events lists upcoming events as cards.
func (a *App) Events(ctx context.Context) error {
	events, err := a.events.List(ctx)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		printlnFn("No events found.")
		return nil
	}
	for _, e := range events {
		printCard(a.view.EventCard(e))
	}
	return nil
}

// Show prints the detail view of one event. A share token pasted instead
// of an id works too, prefixed with "share:".
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}

	var event *models.Event
	if token, ok := strings.CutPrefix(id, "share:"); ok {
		event, err = a.events.ByShareToken(ctx, token)
	} else {
		event, err = a.events.Get(ctx, id)
	}
	if err != nil {
		return err
	}

	d := a.view.EventDetail(*event)
	printCard(d.EventCard)
	printlnFn("  Status:", string(d.Status))
	if d.Category != "" {
		printlnFn("  Category:", d.Category)
	}
	if d.Location != "" {
		printlnFn("  Location:", d.Location)
	}
	if len(d.Tags) > 0 {
		printlnFn("  Tags:", strings.Join(d.Tags, ", "))
	}
	for _, t := range d.Tiers {
		printlnFn("  Tier:", t.Name, t.Price)
	}
	if d.Description != "" {
		printlnFn(d.Description)
	}
	return nil
}

// Share fetches the shareable link for one of the user's events.
func (a *App) Share(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}
	link, err := a.events.ShareLink(ctx, id)
	if err != nil {
		return err
	}
	printlnFn("Share link:", link)
	return nil
}

// Manage shows the organizer summary: bookings and revenue for an event
// the user owns.
func (a *App) Manage(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}
	summary, err := a.events.Manage(ctx, id)
	if err != nil {
		return err
	}

	printCard(a.view.EventCard(summary.Event))
	printlnFn(fmt.Sprintf("Bookings: %d   Revenue: %s%s", len(summary.Bookings), a.config.CurrencySymbol, summary.Revenue.String()))
	for _, b := range summary.Bookings {
		t := a.view.Ticket(b)
		printlnFn(fmt.Sprintf("  [%s] %dx %s  %s  %s", t.ID, t.Quantity, t.TicketType, t.Price, t.BookingStatus))
	}
	return nil
}
