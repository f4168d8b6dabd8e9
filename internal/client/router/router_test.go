package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPublic(t *testing.T) {
	for _, p := range []string{RouteLogin, RouteRegister, RouteForgotPassword} {
		assert.True(t, IsPublic(p), p)
	}
	for _, p := range []string{RouteProfile, RouteEvents, RouteCreateEvent, "/unknown"} {
		assert.False(t, IsPublic(p), p)
	}
}

func TestNew_DefaultsToEntry(t *testing.T) {
	assert.Equal(t, EntryRoute, New("").Location())
	assert.Equal(t, RouteEvents, New(RouteEvents).Location())
}

func TestNavigate_NotifiesListenersInOrder(t *testing.T) {
	r := New(RouteLogin)
	var got []string
	r.OnChange(func(p string) { got = append(got, "a:"+p) })
	r.OnChange(func(p string) { got = append(got, "b:"+p) })

	r.Navigate(RouteProfile)

	assert.Equal(t, RouteProfile, r.Location())
	assert.Equal(t, []string{"a:/perfil", "b:/perfil"}, got)
}

func TestNavigate_SameLocationIsNoop(t *testing.T) {
	r := New(RouteLogin)
	calls := 0
	r.OnChange(func(string) { calls++ })

	r.Navigate(RouteLogin)
	require.Zero(t, calls)
}

func TestUnsubscribe(t *testing.T) {
	r := New(RouteLogin)
	calls := 0
	stop := r.OnChange(func(string) { calls++ })

	r.Navigate(RouteEvents)
	stop()
	r.Navigate(RouteProfile)

	assert.Equal(t, 1, calls)
}

func TestListenerMayRedirect(t *testing.T) {
	r := New(RouteLogin)
	var seen []string
	r.OnChange(func(p string) {
		seen = append(seen, p)
		if !IsPublic(p) {
			r.Navigate(EntryRoute)
		}
	})

	r.Navigate(RouteProfile)

	assert.Equal(t, EntryRoute, r.Location())
	assert.Equal(t, []string{RouteProfile, EntryRoute}, seen)
}
