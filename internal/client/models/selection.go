package models

import (
	"encoding/json"
	"net/url"
)

// SeatChoice is one line of a seat selection: a tier name and how many
// tickets of it the user wants.
type SeatChoice struct {
	SeatType string `json:"seatType"`
	Quantity int    `json:"quantity"`
}

// SeatSelection is the ephemeral selection built during booking. It is
// passed from the ticket-selection step to the payment step, consumed once,
// and never persisted.
type SeatSelection []SeatChoice

// TotalQuantity sums the quantities across all chosen tiers.
func (s SeatSelection) TotalQuantity() int {
	total := 0
	for _, c := range s {
		total += c.Quantity
	}
	return total
}

// Encode serializes the selection as URL-escaped JSON, the form it travels
// in between the booking and payment steps.
func (s SeatSelection) Encode() (string, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return url.QueryEscape(string(b)), nil
}

// DecodeSeatSelection reverses Encode.
func DecodeSeatSelection(encoded string) (SeatSelection, error) {
	raw, err := url.QueryUnescape(encoded)
	if err != nil {
		return nil, err
	}
	var s SeatSelection
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return nil, err
	}
	return s, nil
}
