package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/validate"
)

// parseDateTime accepts "2026-06-01 19:30" or a bare date.
func parseDateTime(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("expected YYYY-MM-DD [HH:MM], got %q", s)
}

func (a *App) promptSignupForm() (validate.SignupForm, error) {
	var form validate.SignupForm
	var err error
	if form.Name, err = getSimpleText(a.reader, "Enter name", os.Stdout); err != nil {
		return form, err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return form, err
	}
	if form.Password, err = getPassword("Choose a password", os.Stdout); err != nil {
		return form, err
	}
	return form, nil
}

// promptEventForm collects the creation form field by field. Validation is
// left to the service so form errors come back as one keyed set.
func (a *App) promptEventForm() (validate.EventForm, error) {
	var form validate.EventForm
	var err error

	if form.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return form, err
	}
	if form.Description, err = GetMultiline(a.reader, "Description", os.Stdout); err != nil {
		return form, err
	}
	if form.Category, err = getSimpleText(a.reader, "Category ("+strings.Join(models.Categories, ", ")+")", os.Stdout); err != nil {
		return form, err
	}
	if form.EventType, err = getSimpleText(a.reader, "Event type (physical/online)", os.Stdout); err != nil {
		return form, err
	}
	prompt := "Venue address"
	if form.EventType == "online" {
		prompt = "Meeting URL"
	}
	if form.Location, err = getSimpleText(a.reader, prompt, os.Stdout); err != nil {
		return form, err
	}

	start, err := getSimpleText(a.reader, "Start (YYYY-MM-DD HH:MM)", os.Stdout)
	if err != nil {
		return form, err
	}
	if form.StartDate, err = parseDateTime(start); err != nil {
		return form, err
	}
	end, err := getSimpleText(a.reader, "End (YYYY-MM-DD HH:MM, empty for none)", os.Stdout)
	if err != nil {
		return form, err
	}
	if end != "" {
		if form.EndDate, err = parseDateTime(end); err != nil {
			return form, err
		}
	}

	if form.Capacity, err = getSimpleText(a.reader, "Capacity (empty for unlimited)", os.Stdout); err != nil {
		return form, err
	}
	if form.Visibility, err = getSimpleText(a.reader, "Visibility (public/private)", os.Stdout); err != nil {
		return form, err
	}
	tags, err := getSimpleText(a.reader, "Tags (comma separated, empty for none)", os.Stdout)
	if err != nil {
		return form, err
	}
	for _, tag := range strings.Split(tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			form.Tags = append(form.Tags, tag)
		}
	}

	lic, err := getSimpleText(a.reader, "Does this event need a license? (y/n)", os.Stdout)
	if err != nil {
		return form, err
	}
	form.LicenseRequired = strings.EqualFold(lic, "y")
	if form.LicenseRequired {
		if form.LicenseFile, err = getSimpleText(a.reader, "License file reference", os.Stdout); err != nil {
			return form, err
		}
	}

	paid, err := getSimpleText(a.reader, "Paid event? (y/n)", os.Stdout)
	if err != nil {
		return form, err
	}
	form.Paid = strings.EqualFold(paid, "y")
	if form.Paid {
		if form.IBAN, err = getSimpleText(a.reader, "Payout IBAN", os.Stdout); err != nil {
			return form, err
		}
		for {
			name, err := getSimpleText(a.reader, "Seat tier name (empty to finish)", os.Stdout)
			if err != nil {
				return form, err
			}
			if name == "" {
				break
			}
			raw, err := getSimpleText(a.reader, "Price for "+name, os.Stdout)
			if err != nil {
				return form, err
			}
			price, err := decimal.NewFromString(raw)
			if err != nil {
				printlnFn("Not a number:", raw)
				continue
			}
			form.Tiers = append(form.Tiers, validate.TierInput{Name: name, Price: price})
		}
	}

	return form, nil
}

// Create walks the event-creation form and submits it.
func (a *App) Create(ctx context.Context) error {
	form, err := a.promptEventForm()
	if err != nil {
		return err
	}

	event, err := a.events.Create(ctx, form)
	if err != nil {
		return err
	}
	printlnFn("Event created with id", event.ID)
	return nil
}
