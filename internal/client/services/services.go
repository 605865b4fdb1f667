// Package services contains the application services behind each screen:
// authentication and profile, event discovery and creation, bookings, and
// payments. Services validate input, call the backend through the Backend
// interface, and keep the session store in sync.
package services

import (
	"context"
	"errors"
)

// Backend is the slice of the HTTP client the services use. *api.Client
// satisfies it; tests provide stubs.
type Backend interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string) error
}

var (
	// ErrNotLoggedIn is returned by operations that need a stored session.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrEventFull is the distinct capacity failure, kept apart from
	// generic HTTP errors so screens can word it properly.
	ErrEventFull = errors.New("event is full")
)
