package services

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/eventlane/eventlane/internal/client/api"
	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/validate"
	"github.com/eventlane/eventlane/internal/logging"
)

// EventService covers discovery, creation, and the organizer views.
type EventService struct {
	backend Backend
	log     logging.Logger
}

func NewEventService(backend Backend, log logging.Logger) *EventService {
	return &EventService{backend: backend, log: log}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := s.backend.Get(ctx, "/events", &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*models.Event, error) {
	var event models.Event
	if err := s.backend.Get(ctx, "/events/"+url.PathEscape(id), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// ByShareToken resolves a shared event link, which works for private
// events too.
func (s *EventService) ByShareToken(ctx context.Context, token string) (*models.Event, error) {
	var event models.Event
	if err := s.backend.Get(ctx, "/events/share/"+url.PathEscape(token), &event); err != nil {
		return nil, err
	}
	return &event, nil
}

type createEventRequest struct {
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	EventType    string       `json:"eventType"`
	Location     string       `json:"location"`
	StartTime    string       `json:"startTime"`
	EndTime      string       `json:"endTime,omitempty"`
	Price        models.Price `json:"price"`
	IBAN         string       `json:"iban,omitempty"`
	MaxAttendees int          `json:"maxAttendees,omitempty"`
	Visibility   string       `json:"visibility,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Image        string       `json:"image,omitempty"`
	LicenseFile  string       `json:"licenseFile,omitempty"`
}

// Create validates the whole form and submits it. The price field is built
// from the form: seat tiers for paid events, "Free" otherwise.
func (s *EventService) Create(ctx context.Context, form validate.EventForm) (*models.Event, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	req := createEventRequest{
		Title:       form.Title,
		Description: form.Description,
		Category:    form.Category,
		EventType:   form.EventType,
		Location:    form.Location,
		StartTime:   form.StartDate.Format(time.RFC3339),
		Visibility:  form.Visibility,
		Tags:        form.Tags,
		Image:       form.Image,
		LicenseFile: form.LicenseFile,
	}
	if !form.EndDate.IsZero() {
		req.EndTime = form.EndDate.Format(time.RFC3339)
	}
	if capacity := strings.TrimSpace(form.Capacity); capacity != "" {
		// already validated as a positive integer
		req.MaxAttendees, _ = strconv.Atoi(capacity)
	}
	if form.Paid {
		tiers := make([]models.SeatTier, len(form.Tiers))
		for i, t := range form.Tiers {
			tiers[i] = models.SeatTier{Name: t.Name, Price: t.Price}
		}
		req.Price = models.Price{Kind: models.PriceTiered, Tiers: tiers}
		req.IBAN = validate.NormalizeIBAN(form.IBAN)
	}

	var event models.Event
	if err := s.backend.Post(ctx, "/events", req, &event); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "event created", "event", event.ID)
	return &event, nil
}

// ManageSummary is the organizer's view of one of their events.
type ManageSummary struct {
	Event    models.Event     `json:"event"`
	Bookings []models.Booking `json:"bookings"`
	Revenue  decimal.Decimal  `json:"revenue"`
}

func (s *EventService) Manage(ctx context.Context, id string) (*ManageSummary, error) {
	var summary ManageSummary
	if err := s.backend.Get(ctx, "/events/"+url.PathEscape(id)+"/manage", &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *EventService) ShareLink(ctx context.Context, id string) (string, error) {
	var out struct {
		Link string `json:"link"`
	}
	if err := s.backend.Get(ctx, "/events/"+url.PathEscape(id)+"/share-link", &out); err != nil {
		return "", err
	}
	return out.Link, nil
}

// CheckCapacity asks the backend whether the requested quantity still
// fits. Both the semantic {available:false} answer and a 409 status map to
// ErrEventFull.
func (s *EventService) CheckCapacity(ctx context.Context, id string, quantity int) error {
	var out struct {
		Available bool `json:"available"`
	}
	body := map[string]int{"quantity": quantity}
	err := s.backend.Post(ctx, "/events/"+url.PathEscape(id)+"/check-capacity", body, &out)
	if err != nil {
		if api.IsStatus(err, http.StatusConflict) {
			return ErrEventFull
		}
		return err
	}
	if !out.Available {
		return ErrEventFull
	}
	return nil
}
