package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/groupgo/internal/client/router"
	"github.com/dmitrijs2005/groupgo/internal/client/services"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
	getList         = GetList
)

// Login shows the login screen and authenticates through the session
// manager. The classified error is printed and returned.
func (a *App) Login(ctx context.Context) error {
	a.nav.Navigate(router.RouteLogin)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	remember := getConfirmation(a.reader, "Remember me?", a.out)

	if err := a.session.Login(ctx, email, password, remember); err != nil {
		a.println("Login failed:", err.Error())
		return err
	}

	snap := a.session.Snapshot()
	if !snap.Authenticated() {
		if snap.Err != nil {
			a.println("Could not load your profile:", snap.Err.Error())
		}
		return nil
	}
	a.println(fmt.Sprintf("Welcome, %s!", displayName(snap.User)))
	return nil
}

// Register shows the sign-up screen. Validation and server messages are
// printed as they are.
func (a *App) Register(ctx context.Context) error {
	a.nav.Navigate(router.RouteRegister)

	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, "Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword(a.reader, "Repeat password", a.out)
	if err != nil {
		return err
	}

	reg := services.Registration{Username: username, Email: email, Password: password, Confirm: confirm}
	if err := a.accounts.Register(ctx, reg); err != nil {
		a.println("Registration failed:", err.Error())
		return err
	}

	a.println("Account created! You can log in now.")
	a.nav.Navigate(router.RouteLogin)
	return nil
}

// ForgotPassword shows the password-recovery screen.
func (a *App) ForgotPassword(ctx context.Context) error {
	a.nav.Navigate(router.RouteForgotPassword)

	identifier, err := getSimpleText(a.reader, "Enter your email or @username to change your password", a.out)
	if err != nil {
		return err
	}
	if err := a.accounts.RequestPasswordReset(ctx, identifier); err != nil {
		a.println(err.Error())
		return err
	}

	a.println("Password recovery is not available from this client yet. Please contact support.")
	return nil
}

// Logout drops the session; it always succeeds.
func (a *App) Logout(ctx context.Context) error {
	a.nav.Navigate(router.RouteLogin)
	a.session.Logout(ctx)
	a.println("Logged out.")
	return nil
}
