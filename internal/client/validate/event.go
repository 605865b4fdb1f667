package validate

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"

	"github.com/eventlane/eventlane/internal/client/models"
)

// TierInput is a seat tier as entered in the creation form.
type TierInput struct {
	Name  string
	Price decimal.Decimal
}

// EventForm carries everything the event-creation screen collects.
// Capacity stays a string because it arrives as raw user input.
type EventForm struct {
	Title           string
	Description     string
	Category        string
	EventType       string // "physical" or "online"
	Location        string
	StartDate       time.Time
	EndDate         time.Time
	Capacity        string
	Visibility      string
	Tags            []string
	Image           string
	Paid            bool
	IBAN            string
	Tiers           []TierInput
	LicenseRequired bool
	LicenseFile     string
}

// Validate checks the whole form with the same rule sets the screen uses
// per field. The returned error is a validation.Errors map keyed by field
// name, suitable for inline display.
func (f EventForm) Validate() error {
	f.IBAN = NormalizeIBAN(f.IBAN)

	return validation.ValidateStruct(&f,
		validation.Field(&f.Title, TitleRules()...),
		validation.Field(&f.Description, DescriptionRules()...),
		validation.Field(&f.Category, CategoryRules(models.Categories)...),
		validation.Field(&f.Location, LocationRules(f.EventType)...),
		validation.Field(&f.StartDate, StartDateRules()...),
		validation.Field(&f.EndDate, EndDateRules(f.StartDate)...),
		validation.Field(&f.Capacity, CapacityRules()...),
		validation.Field(&f.IBAN, validation.When(f.Paid, IBANRules()...)),
		validation.Field(&f.Tiers, validation.When(f.Paid,
			validation.Required.Error("paid events need at least one seat tier"),
			validation.By(tiersHavePositivePrices),
		)),
		validation.Field(&f.LicenseFile, validation.When(f.LicenseRequired,
			validation.Required.Error("a license file is required for this event"),
		)),
	)
}

func tiersHavePositivePrices(value any) error {
	tiers, _ := value.([]TierInput)
	for _, t := range tiers {
		if t.Name == "" {
			return errors.New("every seat tier needs a name")
		}
		if !t.Price.IsPositive() {
			return errors.New("every seat tier needs a positive price")
		}
	}
	return nil
}
