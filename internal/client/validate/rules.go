// Package validate holds the client-side form validation rules. Rule sets
// are exposed as constructors so the per-field checks a screen runs while
// the user types and the whole-form check it runs on submit share one
// definition and cannot drift apart.
package validate

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

var (
	ibanPattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{2}[A-Z0-9]{4,30}$`)
	otpPattern  = regexp.MustCompile(`^[0-9]{6}$`)
)

// nowFn is a test seam for date rules.
var nowFn = time.Now

// NormalizeIBAN strips spaces and uppercases, the form the IBAN rule
// expects.
func NormalizeIBAN(s string) string {
	return strings.ToUpper(strings.ReplaceAll(s, " ", ""))
}

func TitleRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("title is required"),
		validation.Length(3, 0).Error("title must be at least 3 characters"),
	}
}

func DescriptionRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("description is required"),
		validation.Length(10, 0).Error("description must be at least 10 characters"),
	}
}

func CategoryRules(categories []string) []validation.Rule {
	choices := make([]any, len(categories))
	for i, c := range categories {
		choices[i] = c
	}
	return []validation.Rule{
		validation.Required.Error("category is required"),
		validation.In(choices...).Error("unknown category"),
	}
}

// LocationRules requires a location; online events must give a URL.
func LocationRules(eventType string) []validation.Rule {
	rules := []validation.Rule{validation.Required.Error("location is required")}
	if eventType == "online" {
		rules = append(rules, is.URL.Error("online events need a valid URL"))
	}
	return rules
}

func StartDateRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("start date is required"),
		validation.By(func(value any) error {
			t, _ := value.(time.Time)
			if t.IsZero() {
				return nil
			}
			now := nowFn()
			today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			if t.Before(today) {
				return errors.New("start date cannot be in the past")
			}
			return nil
		}),
	}
}

// EndDateRules allows a missing end; a given end must not precede start.
func EndDateRules(start time.Time) []validation.Rule {
	return []validation.Rule{
		validation.By(func(value any) error {
			t, _ := value.(time.Time)
			if t.IsZero() {
				return nil
			}
			if t.Before(start) {
				return errors.New("end date must be on or after the start date")
			}
			return nil
		}),
	}
}

// CapacityRules accepts an empty value; anything else must parse as a
// positive integer.
func CapacityRules() []validation.Rule {
	return []validation.Rule{
		validation.By(func(value any) error {
			s, _ := value.(string)
			if strings.TrimSpace(s) == "" {
				return nil
			}
			n, err := strconv.Atoi(strings.TrimSpace(s))
			if err != nil || n <= 0 {
				return errors.New("capacity must be a positive number")
			}
			return nil
		}),
	}
}

// IBANRules expects a normalized value (see NormalizeIBAN).
func IBANRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("IBAN is required for paid events"),
		validation.Match(ibanPattern).Error("invalid IBAN"),
	}
}

func EmailRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("email is required"),
		is.Email.Error("invalid email address"),
	}
}

func PasswordRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("password is required"),
		validation.Length(6, 0).Error("password must be at least 6 characters"),
	}
}

func OTPRules() []validation.Rule {
	return []validation.Rule{
		validation.Required.Error("verification code is required"),
		validation.Match(otpPattern).Error("verification code must be 6 digits"),
	}
}

// Field runs a rule set against a single value, for inline per-field
// errors.
func Field(value any, rules ...validation.Rule) error {
	return validation.Validate(value, rules...)
}
