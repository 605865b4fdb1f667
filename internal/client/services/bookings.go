package services

import (
	"context"
	"net/url"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/session"
	"github.com/eventlane/eventlane/internal/logging"
)

// BookingService covers ticket bookings and the saved-events list. Every
// operation needs a logged-in user.
type BookingService struct {
	backend Backend
	session session.Store
	log     logging.Logger
}

func NewBookingService(backend Backend, store session.Store, log logging.Logger) *BookingService {
	return &BookingService{backend: backend, session: store, log: log}
}

func (s *BookingService) userID(ctx context.Context) (string, error) {
	user, err := s.session.User(ctx)
	if err != nil {
		return "", err
	}
	if user == nil || user.ID == "" {
		return "", ErrNotLoggedIn
	}
	return user.ID, nil
}

type bookRequest struct {
	EventID string               `json:"eventId"`
	UserID  string               `json:"userId"`
	Tickets models.SeatSelection `json:"tickets"`
}

// Book places a booking for the selected seats.
func (s *BookingService) Book(ctx context.Context, eventID string, sel models.SeatSelection) (*models.Booking, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	req := bookRequest{EventID: eventID, UserID: userID, Tickets: sel}
	if err := s.backend.Post(ctx, "/bookings", req, &booking); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "booking created", "booking", booking.ID, "event", eventID)
	return &booking, nil
}

// ListMine returns the user's bookings.
func (s *BookingService) ListMine(ctx context.Context) ([]models.Booking, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var bookings []models.Booking
	if err := s.backend.Get(ctx, "/bookings?userId="+url.QueryEscape(userID), &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// SaveEvent bookmarks an event for later.
func (s *BookingService) SaveEvent(ctx context.Context, eventID string) error {
	userID, err := s.userID(ctx)
	if err != nil {
		return err
	}
	body := map[string]string{"eventId": eventID, "userId": userID}
	return s.backend.Post(ctx, "/saved-events", body, nil)
}

// ListSaved returns the bookmarked events.
func (s *BookingService) ListSaved(ctx context.Context) ([]models.Event, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.backend.Get(ctx, "/saved-events?userId="+url.QueryEscape(userID), &events); err != nil {
		return nil, err
	}
	return events, nil
}
