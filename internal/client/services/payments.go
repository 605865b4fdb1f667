package services

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/logging"
)

var (
	serviceFeeRate = decimal.RequireFromString("0.05")
	taxRate        = decimal.RequireFromString("0.07")
)

// Totals is the price breakdown shown on the payment screen and passed
// along with the seat selection.
type Totals struct {
	Subtotal decimal.Decimal
	Fee      decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals prices a seat selection against an event's price variant.
// Flat-priced events charge the flat amount per ticket regardless of tier
// names; tiered events look each chosen tier up.
func ComputeTotals(price models.Price, sel models.SeatSelection) (Totals, error) {
	subtotal := decimal.Zero

	switch price.Kind {
	case models.PriceFlat:
		subtotal = price.Flat.Mul(decimal.NewFromInt(int64(sel.TotalQuantity())))
	case models.PriceTiered:
		for _, choice := range sel {
			tierPrice, ok := price.TierPrice(choice.SeatType)
			if !ok {
				return Totals{}, fmt.Errorf("unknown seat tier %q", choice.SeatType)
			}
			subtotal = subtotal.Add(tierPrice.Mul(decimal.NewFromInt(int64(choice.Quantity))))
		}
	default:
		// free events have nothing to total
	}

	fee := subtotal.Mul(serviceFeeRate).Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Totals{
		Subtotal: subtotal,
		Fee:      fee,
		Tax:      tax,
		Total:    subtotal.Add(fee).Add(tax),
	}, nil
}

// PaymentReceipt is the outcome of one per-ticket payment call.
type PaymentReceipt struct {
	Reference     string
	SeatType      string
	Amount        decimal.Decimal
	TransactionID string
}

type PaymentService struct {
	backend Backend
	log     logging.Logger
}

func NewPaymentService(backend Backend, log logging.Logger) *PaymentService {
	return &PaymentService{backend: backend, log: log}
}

type payTicketRequest struct {
	Reference string          `json:"reference"`
	SeatType  string          `json:"seatType"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
}

// PayForSelection issues one payment call per ticket, all concurrently,
// and waits for the whole batch: if any call fails the batch fails as a
// unit and no receipts are returned. Each call carries a client-generated
// reference so the backend can deduplicate.
func (s *PaymentService) PayForSelection(ctx context.Context, eventID string, price models.Price, sel models.SeatSelection, method string) ([]PaymentReceipt, error) {
	if price.IsFree() {
		return nil, nil
	}

	// resolve every ticket's amount up front so a bad tier name fails
	// before any money moves
	type ticket struct {
		seatType string
		amount   decimal.Decimal
	}
	var tickets []ticket
	for _, choice := range sel {
		amount := price.Flat
		if price.Kind == models.PriceTiered {
			var ok bool
			if amount, ok = price.TierPrice(choice.SeatType); !ok {
				return nil, fmt.Errorf("unknown seat tier %q", choice.SeatType)
			}
		}
		for i := 0; i < choice.Quantity; i++ {
			tickets = append(tickets, ticket{seatType: choice.SeatType, amount: amount})
		}
	}
	if len(tickets) == 0 {
		return nil, fmt.Errorf("nothing selected")
	}

	path := "/payments/event/" + url.PathEscape(eventID) + "/pay"
	receipts := make([]PaymentReceipt, len(tickets))

	g, gctx := errgroup.WithContext(ctx)
	for i, tk := range tickets {
		i, tk := i, tk
		g.Go(func() error {
			ref := uuid.NewString()
			req := payTicketRequest{Reference: ref, SeatType: tk.seatType, Amount: tk.amount, Method: method}
			var resp struct {
				TransactionID string `json:"transactionId"`
			}
			if err := s.backend.Post(gctx, path, req, &resp); err != nil {
				return fmt.Errorf("ticket %s: %w", tk.seatType, err)
			}
			receipts[i] = PaymentReceipt{
				Reference:     ref,
				SeatType:      tk.seatType,
				Amount:        tk.amount,
				TransactionID: resp.TransactionID,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("payment batch failed: %w", err)
	}

	s.log.Info(ctx, "payment batch completed", "event", eventID, "tickets", len(tickets))
	return receipts, nil
}
