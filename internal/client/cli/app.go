package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/hotelpanel/internal/client/client"
	"github.com/dmitrijs2005/hotelpanel/internal/client/config"
	"github.com/dmitrijs2005/hotelpanel/internal/client/guard"
	"github.com/dmitrijs2005/hotelpanel/internal/client/models"
	"github.com/dmitrijs2005/hotelpanel/internal/client/nav"
	"github.com/dmitrijs2005/hotelpanel/internal/client/services"
	"github.com/dmitrijs2005/hotelpanel/internal/client/session"
	"github.com/dmitrijs2005/hotelpanel/internal/client/storage"
	"github.com/dmitrijs2005/hotelpanel/internal/filex"
	"github.com/dmitrijs2005/hotelpanel/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

var errLoginRequired = errors.New("login required")

type App struct {
	log  logging.Logger
	db   *sql.DB
	repo storage.Repository

	store   *session.Store
	api     *client.HTTPClient
	metrics prometheus.Gatherer

	authService       services.AuthService
	staffService      services.StaffService
	departmentService services.DepartmentService
	salaryService     services.SalaryService
	dashboardService  services.DashboardService

	reader *bufio.Reader

	outMu sync.Mutex
	out   io.Writer

	mu    sync.Mutex
	route nav.Route
}

var (
	_ nav.Navigator = (*App)(nil)
	_ nav.Notifier  = (*App)(nil)
)

// NewApp opens the session database named in cfg and wires the client.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	path, err := filex.EnsureParentDir(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	a, err := newApp(ctx, cfg, log, storage.NewSQLiteRepository(db), os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.db = db
	return a, nil
}

func newApp(ctx context.Context, cfg *config.Config, log logging.Logger, repo storage.Repository, in io.Reader, out io.Writer) (*App, error) {
	baseURL, err := client.ResolveBaseURL(ctx, repo, cfg.APIURL)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	a := &App{
		log:     log,
		repo:    repo,
		store:   session.NewStore(repo, log.With("component", "session")),
		metrics: reg,
		reader:  bufio.NewReader(in),
		out:     out,
	}

	a.api = client.New(baseURL, a.store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithNavigator(a),
		client.WithNotifier(a),
		client.WithLogger(log.With("component", "api")),
		client.WithMetrics(client.NewMetrics(reg)),
	)

	a.authService = services.NewAuthService(a.api, a.store, log.With("component", "auth"))
	a.staffService = services.NewStaffService(a.api)
	a.departmentService = services.NewDepartmentService(a.api)
	a.salaryService = services.NewSalaryService(a.api)
	a.dashboardService = services.NewDashboardService(a.staffService, a.departmentService)
	return a, nil
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Run restores the previous session and serves the REPL until the user
// exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to hotelctl (type 'help' for commands)")
	a.start(ctx)
	runREPL(ctx, a, a.getStatus, a.reader, a.println)
}

// start reads the persisted session. The guard reports show-loading until
// the read completes, so a returning user never sees the login prompt.
func (a *App) start(ctx context.Context) {
	if guard.Check(a.store) == guard.ShowLoading {
		a.println("Loading...")
	}

	if err := a.store.Load(ctx); err != nil {
		a.log.Warn(ctx, "could not restore session", "error", err)
	}

	switch guard.Check(a.store) {
	case guard.Allow:
		a.setRoute(nav.Dashboard)
		u := a.store.Get().User
		a.printf("Signed in as %s <%s>.\n", u.Name, u.Email)
	default:
		a.setRoute(nav.Login)
		a.println("Please log in (type 'login').")
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.Get().Authenticated()
}

func (a *App) getStatus() string {
	s := a.store.Get()
	if !s.Authenticated() {
		return "guest"
	}
	return fmt.Sprintf("%s %s", s.User.Email, a.Current())
}

// Current and Navigate make App the client's navigator.
func (a *App) Current() nav.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.route
}

// Navigate is called by the API client when the session ended under a
// screen. It tells the user why they are back at login.
func (a *App) Navigate(to nav.Route) {
	from := a.setRoute(to)
	if to == nav.Login && from != nav.Login {
		a.println("Your session has expired. Please log in again.")
	}
}

func (a *App) Notify(msg string) {
	a.println("! " + msg)
}

func (a *App) setRoute(to nav.Route) (from nav.Route) {
	a.mu.Lock()
	defer a.mu.Unlock()
	from, a.route = a.route, to
	return from
}

// protected runs fn for route when the guard allows it.
func (a *App) protected(ctx context.Context, route nav.Route, fn func(ctx context.Context) error) error {
	switch guard.Check(a.store) {
	case guard.ShowLoading:
		a.println("Loading...")
		return nil
	case guard.RedirectToLogin:
		a.setRoute(nav.Login)
		a.println("Please log in first (type 'login').")
		return errLoginRequired
	}

	a.setRoute(route)
	return fn(ctx)
}

// fail reports a command failure under the given headline and returns err.
// Unreachable backends and expired sessions have already been announced by
// the API client.
func (a *App) fail(err error, headline string) error {
	switch {
	case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrUnauthorized):
	case errors.Is(err, models.ErrValidation), errors.Is(err, services.ErrMissingID), errors.Is(err, errNotFound):
		a.println(err.Error())
	case errors.Is(err, context.Canceled):
		a.println("Cancelled.")
	default:
		if msg, ok := client.ServerMessage(err); ok {
			a.printf("%s: %s\n", headline, msg)
		} else {
			a.println(headline)
		}
		a.log.Error(context.Background(), headline, "error", err)
	}
	return err
}

func (a *App) println(args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	fmt.Fprintf(a.out, format, args...)
}
