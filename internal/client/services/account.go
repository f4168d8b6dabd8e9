package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/logging"
)

// Registration is the sign-up form. Confirm must repeat Password.
type Registration struct {
	Username string
	Email    string
	Password string
	Confirm  string
}

// AccountService handles work on accounts that needs no session.
type AccountService interface {
	Register(ctx context.Context, r Registration) error
	RequestPasswordReset(ctx context.Context, identifier string) error
}

type accountService struct {
	client api.Client
	log    logging.Logger
}

func NewAccountService(client api.Client, log logging.Logger) AccountService {
	return &accountService{client: client, log: log.With("component", "account")}
}

// Register validates the form locally, then creates the account. Server
// failures are returned unchanged so their message reaches the user
// verbatim. The token in the response is not used; the user logs in next.
func (s *accountService) Register(ctx context.Context, r Registration) error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)

	switch {
	case r.Username == "":
		return fmt.Errorf("%w: username is required", ErrValidation)
	case !strings.Contains(r.Email, "@"):
		return fmt.Errorf("%w: a valid email is required", ErrValidation)
	case r.Password == "":
		return fmt.Errorf("%w: password is required", ErrValidation)
	case r.Password != r.Confirm:
		return fmt.Errorf("%w: passwords do not match", ErrValidation)
	}

	if _, err := s.client.Register(ctx, api.RegisterRequest{Username: r.Username, Email: r.Email, Password: r.Password}); err != nil {
		return err
	}
	s.log.Info(ctx, "account registered", "username", r.Username)
	return nil
}

// RequestPasswordReset accepts an email or an @username. The backend has no
// recovery endpoint, so after validation the request is only logged.
func (s *accountService) RequestPasswordReset(ctx context.Context, identifier string) error {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" || identifier == "@" {
		return fmt.Errorf("%w: email or @username is required", ErrValidation)
	}
	s.log.Info(ctx, "password reset requested")
	return nil
}
