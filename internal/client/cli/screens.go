package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/client/router"
)

// Profile shows the logged-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.open(router.RouteProfile) {
		return nil
	}
	u := a.session.Snapshot().User
	a.println("Username:", u.Username)
	a.println("Name:    ", u.Name)
	a.println("Email:   ", u.Email)
	return nil
}

// ListEvents shows events the user manages and events the user is invited to.
func (a *App) ListEvents(ctx context.Context) error {
	if !a.open(router.RouteEvents) {
		return nil
	}

	list, err := a.events.List(ctx)
	if err != nil {
		return a.reportEventError(ctx, err)
	}

	a.println(formatEvents("Managed events", list.ManagedEvents))
	a.println(formatEvents("Guest events", list.GuestEvents))
	return nil
}

// CreateEvent shows the event form and, on success, the event list.
func (a *App) CreateEvent(ctx context.Context) error {
	if !a.open(router.RouteCreateEvent) {
		return nil
	}

	name, err := getSimpleText(a.reader, "Event name", a.out)
	if err != nil {
		return err
	}
	guests, err := getList(a.reader, "Guest emails, one per line", a.out)
	if err != nil {
		return err
	}

	if err := a.events.Create(ctx, name, guests); err != nil {
		return a.reportEventError(ctx, err)
	}

	a.println("Event created!")
	return a.ListEvents(ctx)
}

// reportEventError prints err; a rejected credential also ends the session.
func (a *App) reportEventError(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		a.session.Logout(ctx)
		a.println("Your session has expired, please log in again.")
		return err
	}
	a.println("Error:", err.Error())
	return err
}

func formatEvents(title string, events []api.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)", title, len(events))
	for _, e := range events {
		fmt.Fprintf(&b, "\n  - %s", e.Name)
		if e.Admin != nil {
			fmt.Fprintf(&b, " (admin: %s)", e.Admin.Username)
		}
		if len(e.Guests) > 0 {
			names := make([]string, 0, len(e.Guests))
			for _, g := range e.Guests {
				names = append(names, g.Username)
			}
			fmt.Fprintf(&b, " guests: %s", strings.Join(names, ", "))
		}
	}
	return b.String()
}
