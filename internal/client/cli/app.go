package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/client/config"
	"github.com/dmitrijs2005/groupgo/internal/client/guard"
	"github.com/dmitrijs2005/groupgo/internal/client/router"
	"github.com/dmitrijs2005/groupgo/internal/client/services"
	"github.com/dmitrijs2005/groupgo/internal/client/session"
	"github.com/dmitrijs2005/groupgo/internal/client/storage"
	"github.com/dmitrijs2005/groupgo/internal/client/tokenstore"
	"github.com/dmitrijs2005/groupgo/internal/logging"
)

// sessionManager is the subset of *session.Manager the screens use.
type sessionManager interface {
	guard.Source
	Start(ctx context.Context)
	Login(ctx context.Context, email, password string, remember bool) error
	Logout(ctx context.Context)
	HandleLocationChange(ctx context.Context, path string)
}

type App struct {
	config   *config.Config
	log      logging.Logger
	db       *sql.DB
	nav      *router.Router
	session  sessionManager
	guard    *guard.Guard
	accounts services.AccountService
	events   services.EventService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp builds the client from cfg: it opens and migrates the local
// database and wires the token store, API client, session manager, router
// and guard together.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logging.NewTextLogger(os.Stderr, cfg.LogLevel)

	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", cfg.DatabasePath, "error", err)
		return nil, err
	}

	tokens := tokenstore.New(tokenstore.NewSQLiteTier(db), tokenstore.NewMemoryTier(), log)
	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, &http.Client{}, log)
	nav := router.New(router.EntryRoute)
	mgr := session.NewManager(ctx, client, tokens, nav, log, session.Options{
		RedirectOnProfileError: cfg.RedirectOnProfileError,
	})

	return &App{
		config:   cfg,
		log:      log,
		db:       db,
		nav:      nav,
		session:  mgr,
		guard:    guard.New(mgr, nav),
		accounts: services.NewAccountService(client, log),
		events:   services.NewEventService(client, tokens, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any saved session and runs the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	stopNav := a.nav.OnChange(func(path string) { a.session.HandleLocationChange(ctx, path) })
	defer stopNav()
	stopGuard := a.guard.Watch(func(path string, d guard.Decision) {
		if d == guard.Redirect {
			a.println("Your session has ended, please log in again.")
		}
	})
	defer stopGuard()

	a.session.Start(ctx)
	if snap := a.session.Snapshot(); snap.Authenticated() {
		a.println(fmt.Sprintf("Welcome back, %s!", displayName(snap.User)))
	}

	a.println("Welcome to GroupGo (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)
}

// Close releases the local database.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "error closing database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().Authenticated()
}

func (a *App) status() string {
	s := a.nav.Location()
	if snap := a.session.Snapshot(); snap.User != nil {
		s = snap.User.Username + " " + s
	}
	return s
}

// open navigates to a protected route and reports whether its screen may
// render. Redirects have already happened when it returns false.
func (a *App) open(route string) bool {
	a.nav.Navigate(route)
	if a.nav.Location() != route {
		a.println("Please log in first.")
		return false
	}
	switch a.guard.Check(route) {
	case guard.Wait:
		a.println("Loading...")
		return false
	case guard.Redirect:
		a.println("Please log in first.")
		return false
	}
	return true
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func displayName(u *api.UserProfile) string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}
