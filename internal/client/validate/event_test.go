package validate

import (
	"testing"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFixedNow(t *testing.T, now time.Time) {
	t.Helper()
	old := nowFn
	nowFn = func() time.Time { return now }
	t.Cleanup(func() { nowFn = old })
}

func validForm(now time.Time) EventForm {
	return EventForm{
		Title:       "Jazz Night",
		Description: "An evening of live jazz downtown.",
		Category:    "music",
		EventType:   "physical",
		Location:    "Blue Hall, Main St",
		StartDate:   now.Add(48 * time.Hour),
		Visibility:  "public",
	}
}

func fieldError(t *testing.T, err error, field string) string {
	t.Helper()
	require.Error(t, err)
	errs, ok := err.(validation.Errors)
	require.True(t, ok, "expected validation.Errors, got %T", err)
	fieldErr, ok := errs[field]
	require.True(t, ok, "expected an error on %q, got %v", field, errs)
	return fieldErr.Error()
}

func TestEventForm_Valid(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	require.NoError(t, validForm(now).Validate())
}

func TestEventForm_TitleLength(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.Title = "ab"
	assert.Contains(t, fieldError(t, f.Validate(), "Title"), "at least 3")

	f.Title = "abc"
	assert.NoError(t, f.Validate())
}

func TestEventForm_DescriptionLength(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.Description = "too short"
	fieldError(t, f.Validate(), "Description")
}

func TestEventForm_Category(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.Category = "underwater-basket-weaving"
	assert.Contains(t, fieldError(t, f.Validate(), "Category"), "unknown category")
}

func TestEventForm_Dates(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.StartDate = now.Add(-48 * time.Hour)
	assert.Contains(t, fieldError(t, f.Validate(), "StartDate"), "past")

	// same-day start is allowed
	f.StartDate = now.Add(time.Hour)
	assert.NoError(t, f.Validate())

	f.EndDate = f.StartDate.Add(-time.Hour)
	assert.Contains(t, fieldError(t, f.Validate(), "EndDate"), "after the start")
}

func TestEventForm_OnlineLocation(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.EventType = "online"
	f.Location = "not a url at all ???"
	fieldError(t, f.Validate(), "Location")

	f.Location = "https://meet.example.com/jazz"
	assert.NoError(t, f.Validate())
}

func TestEventForm_Capacity(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	tests := []struct {
		capacity string
		wantErr  bool
	}{
		{capacity: "", wantErr: false},
		{capacity: "100", wantErr: false},
		{capacity: "0", wantErr: true},
		{capacity: "-5", wantErr: true},
		{capacity: "lots", wantErr: true},
	}

	for _, tc := range tests {
		f := validForm(now)
		f.Capacity = tc.capacity
		err := f.Validate()
		if tc.wantErr {
			fieldError(t, err, "Capacity")
		} else {
			assert.NoError(t, err, "capacity %q", tc.capacity)
		}
	}
}

func TestEventForm_PaidRequiresIBANAndTiers(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.Paid = true
	err := f.Validate()
	fieldError(t, err, "IBAN")
	assert.Contains(t, fieldError(t, err, "Tiers"), "at least one seat tier")

	f.IBAN = "sa03 8000 0000 6080 1016 7519" // normalized before matching
	f.Tiers = []TierInput{{Name: "Standard", Price: decimal.Zero}}
	assert.Contains(t, fieldError(t, f.Validate(), "Tiers"), "positive price")

	f.Tiers = []TierInput{{Name: "Standard", Price: decimal.NewFromInt(40)}}
	assert.NoError(t, f.Validate())
}

func TestEventForm_LicenseFile(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	withFixedNow(t, now)

	f := validForm(now)
	f.LicenseRequired = true
	fieldError(t, f.Validate(), "LicenseFile")

	f.LicenseFile = "license.pdf"
	assert.NoError(t, f.Validate())
}
