package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/eventlane/eventlane/internal/client/validate"
)

// Profile fetches and prints the user profile.
func (a *App) Profile(ctx context.Context) error {
	user, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}
	a.user = user

	printlnFn("Name: ", user.Name)
	printlnFn("Email:", user.Email)
	if user.Phone != "" {
		printlnFn("Phone:", user.Phone)
	}
	if user.Bio != "" {
		printlnFn("Bio:  ", user.Bio)
	}
	if user.IBAN != "" {
		printlnFn("IBAN: ", user.IBAN)
	}
	return nil
}

// promptWithDefault keeps the current value when the user enters nothing.
func (a *App) promptWithDefault(label, current string) (string, error) {
	text, err := getSimpleText(a.reader, fmt.Sprintf("%s [%s]", label, current), os.Stdout)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}

// EditProfile edits the profile field by field; empty input keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	current, err := a.auth.Profile(ctx)
	if err != nil {
		return err
	}

	var form validate.ProfileForm
	if form.Name, err = a.promptWithDefault("Name", current.Name); err != nil {
		return err
	}
	if form.Email, err = a.promptWithDefault("Email", current.Email); err != nil {
		return err
	}
	if form.Phone, err = a.promptWithDefault("Phone", current.Phone); err != nil {
		return err
	}
	if form.Bio, err = a.promptWithDefault("Bio", current.Bio); err != nil {
		return err
	}
	if form.IBAN, err = a.promptWithDefault("IBAN", current.IBAN); err != nil {
		return err
	}

	user, err := a.auth.UpdateProfile(ctx, form)
	if err != nil {
		return err
	}
	a.user = user
	printlnFn("Profile updated.")
	return nil
}
