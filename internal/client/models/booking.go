package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// BookingStatus is the server-stored status of a booking. The displayed
// upcoming/ongoing/past state is derived client-side from event times.
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingAttended  BookingStatus = "attended"
)

// Booking ties a user to an event with a ticket type and quantity.
// The backend sometimes embeds the full event record.
type Booking struct {
	ID         string          `json:"_id"`
	EventID    string          `json:"eventId"`
	UserID     string          `json:"userId"`
	Status     BookingStatus   `json:"status"`
	TicketType string          `json:"ticketType"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	CreatedAt  EventTime       `json:"createdAt"`
	Event      *Event          `json:"event,omitempty"`
}

func (bk *Booking) UnmarshalJSON(b []byte) error {
	type alias Booking
	aux := struct {
		*alias
		AltID string `json:"id"`
	}{alias: (*alias)(bk)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	if bk.ID == "" {
		bk.ID = aux.AltID
	}
	return nil
}
