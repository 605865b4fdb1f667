package models

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// SeatTier is a named ticket category with its own price.
type SeatTier struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PriceKind discriminates the pricing variants the backend may send.
type PriceKind int

const (
	PriceFree PriceKind = iota
	PriceFlat
	PriceTiered
)

// Price models the backend's pricing field, which is one of: a flat number,
// a label string (usually "Free"), or a list of seat tiers. Unexpected
// shapes decode as Free instead of failing, so a malformed record can never
// break a listing.
type Price struct {
	Kind  PriceKind
	Flat  decimal.Decimal
	Tiers []SeatTier

	// Label keeps the original string for string-valued prices so display
	// code can pass it through unchanged.
	Label string
}

func (p *Price) UnmarshalJSON(b []byte) error {
	p.Kind, p.Flat, p.Tiers, p.Label = PriceFree, decimal.Decimal{}, nil, ""

	trimmed := bytes.TrimSpace(b)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return nil
		}
		p.Label = s
	case '[':
		var tiers []SeatTier
		if err := json.Unmarshal(trimmed, &tiers); err != nil {
			return nil
		}
		p.Kind = PriceTiered
		p.Tiers = tiers
	default:
		var d decimal.Decimal
		if err := json.Unmarshal(trimmed, &d); err != nil {
			return nil
		}
		p.Kind = PriceFlat
		p.Flat = d
	}
	return nil
}

func (p Price) MarshalJSON() ([]byte, error) {
	switch p.Kind {
	case PriceFlat:
		return json.Marshal(p.Flat)
	case PriceTiered:
		return json.Marshal(p.Tiers)
	default:
		if p.Label != "" {
			return json.Marshal(p.Label)
		}
		return json.Marshal("Free")
	}
}

// IsFree reports whether the event needs no payment step: a Free variant,
// a zero flat amount, or a tier list with no priced tiers.
func (p Price) IsFree() bool {
	switch p.Kind {
	case PriceFlat:
		return p.Flat.IsZero()
	case PriceTiered:
		for _, t := range p.Tiers {
			if !t.Price.IsZero() {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// MinTier returns the cheapest seat tier, if any tiers exist.
func (p Price) MinTier() (SeatTier, bool) {
	if p.Kind != PriceTiered || len(p.Tiers) == 0 {
		return SeatTier{}, false
	}
	min := p.Tiers[0]
	for _, t := range p.Tiers[1:] {
		if t.Price.LessThan(min.Price) {
			min = t
		}
	}
	return min, true
}

// TierPrice looks up the price of the named tier.
func (p Price) TierPrice(name string) (decimal.Decimal, bool) {
	for _, t := range p.Tiers {
		if t.Name == name {
			return t.Price, true
		}
	}
	return decimal.Decimal{}, false
}
