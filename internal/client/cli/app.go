package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/onkmade/secondhand/internal/client/api"
	"github.com/onkmade/secondhand/internal/client/config"
	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/client/repositories"
	"github.com/onkmade/secondhand/internal/client/services"
	"github.com/onkmade/secondhand/internal/logging"
)

// App holds the wired-up client: configuration, services, the current
// draft, the cached session, and the view router.
type App struct {
	config   *config.Config
	log      logging.Logger
	client   api.Client
	auth     services.AuthService
	products services.ProductService
	watch    services.WatchlistService
	db       *sql.DB

	draft   *models.Draft
	session models.Session
	router  *Router

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, builds the HTTP API client, and wires
// the services together.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		log:      log,
		client:   apiClient,
		auth:     services.NewAuthService(apiClient, db),
		products: services.NewProductService(apiClient),
		watch:    services.NewWatchlistService(apiClient, db),
		db:       db,
		draft:    models.NewDraft(),
		router:   NewRouter(),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run probes the cached session, logs server reachability, loads the feed,
// and enters the REPL. It blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.auth.Close(ctx)

	if s, err := a.auth.Probe(ctx); err != nil {
		a.log.Warn(ctx, "session probe failed, continuing anonymously", "error", err)
		a.session = s
	} else {
		a.session = s
	}

	if err := a.client.Ping(ctx); err != nil {
		a.log.Warn(ctx, "server unreachable", "url", a.config.APIBaseURL, "error", err)
	} else {
		a.log.Info(ctx, "server reachable", "url", a.config.APIBaseURL)
	}

	_ = a.Feed(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Settings shows the active configuration values.
func (a *App) Settings(ctx context.Context) error {
	a.router.Begin(SectionSettings)

	fmt.Fprintf(a.out, "API base URL:    %s\n", a.config.APIBaseURL)
	fmt.Fprintf(a.out, "Request timeout: %s\n", a.config.RequestTimeout)
	fmt.Fprintf(a.out, "Database path:   %s\n", a.config.DatabasePath)
	return nil
}

func (a *App) isLoggedIn() bool {
	return !a.session.Anonymous()
}

func (a *App) getStatus() string {
	if a.isLoggedIn() {
		return "(" + a.session.DisplayName() + ")"
	}
	return ""
}
