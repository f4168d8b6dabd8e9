package router

import (
	"sync"
)

// Navigator is the part of Router the session manager and guard depend on.
type Navigator interface {
	Location() string
	Navigate(path string)
}

// Router holds the current location and notifies listeners on change.
// Listeners run synchronously, outside the lock, in registration order; a
// listener may itself call Navigate.
type Router struct {
	mu        sync.Mutex
	location  string
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(path string)
}

var _ Navigator = (*Router)(nil)

func New(initial string) *Router {
	if initial == "" {
		initial = EntryRoute
	}
	return &Router{location: initial}
}

func (r *Router) Location() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.location
}

// Navigate moves to path. Navigating to the current location is a no-op,
// so redirects to the entry route cannot loop.
func (r *Router) Navigate(path string) {
	r.mu.Lock()
	if path == r.location {
		r.mu.Unlock()
		return
	}
	r.location = path
	fns := make([]func(string), 0, len(r.listeners))
	for _, l := range r.listeners {
		fns = append(fns, l.fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn(path)
	}
}

// OnChange registers fn for location changes and returns its unsubscribe.
func (r *Router) OnChange(fn func(path string)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, listener{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		for i, l := range r.listeners {
			if l.id == id {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}
