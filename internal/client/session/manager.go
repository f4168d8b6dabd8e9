package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/client/router"
	"github.com/dmitrijs2005/groupgo/internal/logging"
)

// TokenStore is the credential persistence the manager depends on.
type TokenStore interface {
	Save(ctx context.Context, token string, remember bool)
	Load(ctx context.Context) (string, bool)
	Has(ctx context.Context) bool
	Clear(ctx context.Context)
}

// Options tunes policy that differed between client variants.
type Options struct {
	// RedirectOnProfileError sends the user to the entry route when a
	// profile fetch fails for a reason other than 401. A 401 always
	// redirects.
	RedirectOnProfileError bool
}

type Manager struct {
	client api.Client
	tokens TokenStore
	nav    router.Navigator
	log    logging.Logger
	opts   Options

	mu          sync.Mutex
	current     Snapshot
	subscribers []subscriber
	nextID      int

	loggingIn atomic.Bool
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// NewManager builds the manager and sets its initial state from the token
// store. It performs no network call; use Start for that.
func NewManager(ctx context.Context, client api.Client, tokens TokenStore, nav router.Navigator, log logging.Logger, opts Options) *Manager {
	m := &Manager{
		client: client,
		tokens: tokens,
		nav:    nav,
		log:    log.With("component", "session"),
		opts:   opts,
	}
	if tokens.Has(ctx) {
		m.current.State = Loading
	}
	return m
}

// Snapshot returns the current session.
func (m *Manager) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current.clone()
}

// Subscribe registers fn to be called synchronously after every transition
// and returns a function that removes it.
func (m *Manager) Subscribe(fn func(Snapshot)) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Start restores the session at process start: with a stored credential
// and no user it fetches the profile, without one it leaves protected
// locations.
func (m *Manager) Start(ctx context.Context) {
	token, ok := m.tokens.Load(ctx)
	switch {
	case ok && m.Snapshot().User == nil:
		m.fetchProfile(ctx, token)
	case !ok:
		m.transition(ctx, func(s *Snapshot) {
			if s.State == Loading {
				s.State = Unauthenticated
			}
		})
		m.redirectIfProtected()
	}
}

// Login authenticates with the backend. On success the credential is
// stored according to remember and the profile is fetched; the caller is
// then taken to the profile screen. On failure the session moves to Error
// with a classified error, which is also returned, and nothing is stored.
//
// Profile fetch failures after a successful login are recorded in the
// session, not returned. A Login while another is running returns
// ErrLoginInProgress without touching the session.
func (m *Manager) Login(ctx context.Context, email, password string, remember bool) error {
	if !m.loggingIn.CompareAndSwap(false, true) {
		return ErrLoginInProgress
	}
	defer m.loggingIn.Store(false)

	m.transition(ctx, func(s *Snapshot) {
		s.State = Loading
		s.Err = nil
	})

	resp, err := m.client.Login(ctx, email, password)
	if err == nil && (resp == nil || resp.AccessToken == "") {
		err = ErrTokenNotReceived
	} else if err != nil {
		err = classifyLoginError(err)
	}
	if err != nil {
		m.log.Warn(ctx, "login failed", "error", err)
		m.transition(ctx, func(s *Snapshot) {
			s.State = Error
			s.User = nil
			s.Err = err
		})
		return err
	}

	m.tokens.Save(ctx, resp.AccessToken, remember)
	m.fetchProfile(ctx, resp.AccessToken)

	if m.Snapshot().Authenticated() {
		m.log.Info(ctx, "logged in", "remember", remember)
		m.nav.Navigate(router.RouteProfile)
	}
	return nil
}

// Logout drops the credential and the session and returns to the entry
// route. It never fails.
func (m *Manager) Logout(ctx context.Context) {
	m.tokens.Clear(ctx)
	m.transition(ctx, func(s *Snapshot) {
		*s = Snapshot{State: Unauthenticated}
	})
	m.nav.Navigate(router.EntryRoute)
}

// HandleLocationChange is wired to the router. A signed-in session whose
// credential has expired or been cleared is dropped, and a protected path
// without a credential bounces back to the entry route.
func (m *Manager) HandleLocationChange(ctx context.Context, path string) {
	if m.tokens.Has(ctx) {
		return
	}
	if snap := m.Snapshot(); snap.State == Authenticated || snap.User != nil {
		m.log.Info(ctx, "credential gone, ending session")
		m.transition(ctx, func(s *Snapshot) {
			*s = Snapshot{State: Unauthenticated, Err: ErrInvalidToken}
		})
	}
	if !router.IsPublic(path) {
		m.log.Debug(ctx, "no credential for protected location", "path", path)
		m.nav.Navigate(router.EntryRoute)
	}
}

func (m *Manager) fetchProfile(ctx context.Context, token string) {
	m.transition(ctx, func(s *Snapshot) {
		s.State = Loading
		s.Err = nil
	})

	profile, err := m.client.FetchProfile(ctx, token)
	if err == nil {
		m.transition(ctx, func(s *Snapshot) {
			*s = Snapshot{State: Authenticated, User: profile}
		})
		return
	}

	m.tokens.Clear(ctx)

	if errors.Is(err, api.ErrUnauthorized) {
		m.log.Info(ctx, "stored credential rejected by server")
		m.transition(ctx, func(s *Snapshot) {
			*s = Snapshot{State: Unauthenticated, Err: ErrInvalidToken}
		})
		m.redirectIfProtected()
		return
	}

	m.log.Warn(ctx, "profile fetch failed", "error", err)
	m.transition(ctx, func(s *Snapshot) {
		*s = Snapshot{State: Error, Err: fmt.Errorf("%w: %w", ErrProfileUnavailable, err)}
	})
	if m.opts.RedirectOnProfileError {
		m.redirectIfProtected()
	}
}

func (m *Manager) redirectIfProtected() {
	if !router.IsPublic(m.nav.Location()) {
		m.nav.Navigate(router.EntryRoute)
	}
}

// transition applies mutate under the lock and then publishes the result.
func (m *Manager) transition(ctx context.Context, mutate func(*Snapshot)) {
	m.mu.Lock()
	prev := m.current.State
	mutate(&m.current)
	snap := m.current.clone()
	fns := make([]func(Snapshot), 0, len(m.subscribers))
	for _, s := range m.subscribers {
		fns = append(fns, s.fn)
	}
	m.mu.Unlock()

	m.log.Debug(ctx, "session transition", "from", prev, "to", snap.State)
	for _, fn := range fns {
		fn(snap)
	}
}
