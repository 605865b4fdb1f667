package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventlane/eventlane/internal/client/api"
	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/session"
	"github.com/eventlane/eventlane/internal/client/validate"
)

func TestEventService_List(t *testing.T) {
	backend := &stubBackend{t: t, get: func(ctx context.Context, path string, out any) error {
		require.Equal(t, "/events", path)
		decodeInto(t, `[{"_id":"e1","title":"Jazz Night"},{"id":"e2","title":"Tech Meetup"}]`, out)
		return nil
	}}

	s := NewEventService(backend, testLogger())
	events, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "e2", events[1].ID, "id fallback applies in lists too")
}

func TestEventService_Create_RejectsInvalidForm(t *testing.T) {
	s := NewEventService(&stubBackend{t: t}, testLogger())

	_, err := s.Create(context.Background(), validate.EventForm{Title: "ab"})
	require.Error(t, err, "validation failures never reach the network")
}

func TestEventService_Create_BuildsPaidPayload(t *testing.T) {
	var got createEventRequest
	backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
		require.Equal(t, "/events", path)
		got = body.(createEventRequest)
		decodeInto(t, `{"_id":"e9"}`, out)
		return nil
	}}

	s := NewEventService(backend, testLogger())
	form := validate.EventForm{
		Title:       "Jazz Night",
		Description: "An evening of live jazz downtown.",
		Category:    "music",
		EventType:   "physical",
		Location:    "Blue Hall",
		StartDate:   time.Now().Add(48 * time.Hour),
		Capacity:    "150",
		Paid:        true,
		IBAN:        "sa03 8000 0000 6080 1016 7519",
		Tiers:       []validate.TierInput{{Name: "Standard", Price: decimal.NewFromInt(40)}},
	}

	event, err := s.Create(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "e9", event.ID)

	assert.Equal(t, "SA0380000000608010167519", got.IBAN)
	assert.Equal(t, 150, got.MaxAttendees)
	assert.Equal(t, models.PriceTiered, got.Price.Kind)
	require.Len(t, got.Price.Tiers, 1)
}

func TestEventService_CheckCapacity(t *testing.T) {
	t.Run("available", func(t *testing.T) {
		backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
			require.Equal(t, "/events/e1/check-capacity", path)
			decodeInto(t, `{"available":true,"remaining":12}`, out)
			return nil
		}}
		s := NewEventService(backend, testLogger())
		require.NoError(t, s.CheckCapacity(context.Background(), "e1", 2))
	})

	t.Run("semantic full answer", func(t *testing.T) {
		backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
			decodeInto(t, `{"available":false}`, out)
			return nil
		}}
		s := NewEventService(backend, testLogger())
		require.ErrorIs(t, s.CheckCapacity(context.Background(), "e1", 2), ErrEventFull)
	})

	t.Run("conflict status", func(t *testing.T) {
		backend := &stubBackend{t: t, post: func(ctx context.Context, path string, body, out any) error {
			return &api.Error{Status: http.StatusConflict, Message: "sold out"}
		}}
		s := NewEventService(backend, testLogger())
		require.ErrorIs(t, s.CheckCapacity(context.Background(), "e1", 2), ErrEventFull)
	})
}

func TestBookingService_RequiresLogin(t *testing.T) {
	s := NewBookingService(&stubBackend{t: t}, session.NewMemoryStore(), testLogger())

	_, err := s.Book(context.Background(), "e1", models.SeatSelection{{SeatType: "GA", Quantity: 1}})
	require.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = s.ListMine(context.Background())
	require.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestBookingService_ListMine_FiltersByUser(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.SetUser(ctx, &models.User{ID: "u1"}))

	backend := &stubBackend{t: t, get: func(ctx context.Context, path string, out any) error {
		require.Equal(t, "/bookings?userId=u1", path)
		decodeInto(t, `[{"_id":"b1","eventId":"e1","status":"confirmed"}]`, out)
		return nil
	}}

	s := NewBookingService(backend, store, testLogger())
	bookings, err := s.ListMine(ctx)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, models.BookingConfirmed, bookings[0].Status)
}
