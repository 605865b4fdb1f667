package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/eventlane/eventlane/internal/client/api"
	"github.com/eventlane/eventlane/internal/client/config"
	"github.com/eventlane/eventlane/internal/client/display"
	"github.com/eventlane/eventlane/internal/client/models"
	"github.com/eventlane/eventlane/internal/client/services"
	"github.com/eventlane/eventlane/internal/client/session"
	"github.com/eventlane/eventlane/internal/logging"
)

// App holds everything the command handlers need. The user field is a
// cached copy of the stored profile snapshot so the prompt can show who is
// logged in without a database read per line.
type App struct {
	config   *config.Config
	db       *sql.DB
	session  session.Store
	auth     *services.AuthService
	events   *services.EventService
	bookings *services.BookingService
	payments *services.PaymentService
	view     *display.Formatter
	reader   *bufio.Reader
	log      logging.Logger
	user     *models.User
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := session.Open(ctx, c.SessionDBPath)
	if err != nil {
		log.Error(ctx, "initializing session database", "error", err)
		return nil, err
	}
	store := session.NewSQLiteStore(db)

	backend := api.New(c.APIBaseURL, c.HTTPTimeout, store, log)

	app := &App{
		config:   c,
		db:       db,
		session:  store,
		auth:     services.NewAuthService(backend, store, log),
		events:   services.NewEventService(backend, log),
		bookings: services.NewBookingService(backend, store, log),
		payments: services.NewPaymentService(backend, log),
		view: &display.Formatter{
			APIHost:          c.APIBaseURL,
			CurrencySymbol:   c.CurrencySymbol,
			PlaceholderImage: c.PlaceholderImage,
		},
		reader: bufio.NewReader(os.Stdin),
		log:    log,
	}

	// a session saved by a previous run is picked up immediately
	if user, err := store.User(ctx); err == nil {
		app.user = user
	}

	return app, nil
}

func (a *App) isLoggedIn() bool {
	return a.user != nil && a.user.ID != ""
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return "(" + a.user.Email + ")"
	}
	return ""
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	printlnFn("Welcome to EventLane (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}
