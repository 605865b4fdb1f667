package cli

import (
	"context"
	"errors"

	"github.com/eventlane/eventlane/internal/client/services"
)

// Settings prints the effective client configuration and, when logged in,
// when the stored token expires.
func (a *App) Settings(ctx context.Context) error {
	printlnFn("API base URL:  ", a.config.APIBaseURL)
	printlnFn("Currency:      ", a.config.CurrencySymbol)
	printlnFn("Session file:  ", a.config.SessionDBPath)

	exp, err := a.auth.TokenExpiry(ctx)
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		printlnFn("Session:        not logged in")
	case err != nil:
		printlnFn("Session:        token unreadable:", err)
	default:
		printlnFn("Session expires:", exp.Local().Format("Jan 2, 2006 3:04 PM"))
	}
	return nil
}
