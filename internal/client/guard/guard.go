// Package guard decides whether a protected screen may render for the
// current session.
package guard

import (
	"github.com/dmitrijs2005/groupgo/internal/client/router"
	"github.com/dmitrijs2005/groupgo/internal/client/session"
)

type Decision int

const (
	// Render shows the protected content.
	Render Decision = iota
	// Wait shows a loading placeholder instead of the content.
	Wait
	// Redirect sends the user to the entry route.
	Redirect
)

func (d Decision) String() string {
	switch d {
	case Render:
		return "render"
	case Wait:
		return "loading"
	case Redirect:
		return "redirect"
	default:
		return "unknown"
	}
}

// Decide is the pure guard rule.
func Decide(s session.Snapshot) Decision {
	switch {
	case s.State == session.Loading:
		return Wait
	case s.User == nil:
		return Redirect
	default:
		return Render
	}
}

// Source is the part of session.Manager the guard reads.
type Source interface {
	Snapshot() session.Snapshot
	Subscribe(fn func(session.Snapshot)) func()
}

// Guard wraps protected routes. While the current location is protected it
// re-evaluates on every session publish and performs the redirect itself.
type Guard struct {
	source Source
	nav    router.Navigator
}

func New(source Source, nav router.Navigator) *Guard {
	return &Guard{source: source, nav: nav}
}

// Check evaluates the current session for path. Public paths always render.
// A Redirect decision has already been carried out when Check returns.
func (g *Guard) Check(path string) Decision {
	if router.IsPublic(path) {
		return Render
	}
	d := Decide(g.source.Snapshot())
	if d == Redirect {
		g.nav.Navigate(router.EntryRoute)
	}
	return d
}

// Watch subscribes to session changes. Each publish is evaluated against
// the navigator's current location and onDecision, if non-nil, receives the
// result for protected locations. The returned function stops watching.
func (g *Guard) Watch(onDecision func(path string, d Decision)) func() {
	return g.source.Subscribe(func(s session.Snapshot) {
		path := g.nav.Location()
		if router.IsPublic(path) {
			return
		}
		d := Decide(s)
		if d == Redirect {
			g.nav.Navigate(router.EntryRoute)
		}
		if onDecision != nil {
			onDecision(path, d)
		}
	})
}
