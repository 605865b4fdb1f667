package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/services"
)

// Book runs the whole booking flow: pick seats, check capacity, show the
// price breakdown, pay, and place the booking.
func (a *App) Book(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter event id", os.Stdout)
	if err != nil {
		return err
	}
	event, err := a.events.Get(ctx, id)
	if err != nil {
		return err
	}

	sel, err := a.promptSeatSelection(event)
	if err != nil {
		return err
	}
	if sel.TotalQuantity() == 0 {
		printlnFn("Nothing selected.")
		return nil
	}

	if err := a.events.CheckCapacity(ctx, event.ID, sel.TotalQuantity()); err != nil {
		if errors.Is(err, services.ErrEventFull) {
			printlnFn("Sorry, the event is sold out for that quantity.")
			return nil
		}
		return err
	}

	totals, err := services.ComputeTotals(event.Price, sel)
	if err != nil {
		return err
	}
	sym := a.config.CurrencySymbol
	if !event.Price.IsFree() {
		printlnFn(fmt.Sprintf("Subtotal %s%s  Fee %s%s  Tax %s%s  Total %s%s",
			sym, totals.Subtotal, sym, totals.Fee, sym, totals.Tax, sym, totals.Total))

		confirm, err := getSimpleText(a.reader, "Pay by card? (y/n)", os.Stdout)
		if err != nil {
			return err
		}
		if !strings.EqualFold(confirm, "y") {
			printlnFn("Booking cancelled.")
			return nil
		}

		receipts, err := a.payments.PayForSelection(ctx, event.ID, event.Price, sel, "card")
		if err != nil {
			return err
		}
		for _, r := range receipts {
			printlnFn(fmt.Sprintf("Paid %s%s for %s (transaction %s)", sym, r.Amount, r.SeatType, r.TransactionID))
		}
	}

	booking, err := a.bookings.Book(ctx, event.ID, sel)
	if err != nil {
		return err
	}
	printlnFn("Booked! Reference:", booking.ID)
	return nil
}

// promptSeatSelection asks for tier names and quantities until an empty
// tier name. Events without tiers get one "General" line.
func (a *App) promptSeatSelection(event *models.Event) (models.SeatSelection, error) {
	var sel models.SeatSelection

	if event.Price.Kind != models.PriceTiered {
		qty, err := GetInt(a.reader, "How many tickets?", os.Stdout)
		if err != nil {
			return nil, err
		}
		return models.SeatSelection{{SeatType: "General", Quantity: qty}}, nil
	}

	for _, t := range event.Price.Tiers {
		printlnFn("  Tier:", t.Name, a.config.CurrencySymbol+t.Price.String())
	}
	for {
		name, err := getSimpleText(a.reader, "Seat tier (empty to finish)", os.Stdout)
		if err != nil {
			return nil, err
		}
		if name == "" {
			break
		}
		if _, ok := event.Price.TierPrice(name); !ok {
			printlnFn("No such tier:", name)
			continue
		}
		qty, err := GetInt(a.reader, "How many "+name+" tickets?", os.Stdout)
		if err != nil {
			return nil, err
		}
		sel = append(sel, models.SeatChoice{SeatType: name, Quantity: qty})
	}
	return sel, nil
}
