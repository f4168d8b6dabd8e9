package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
)

var (
	ErrEmailNotFound        = errors.New("email not found")
	ErrIncorrectPassword    = errors.New("incorrect password")
	ErrTokenNotReceived     = errors.New("token not received")
	ErrInvalidToken         = errors.New("unauthorized: invalid or expired token")
	ErrLoginInProgress      = errors.New("login already in progress")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrProfileUnavailable   = errors.New("failed to load user profile")
)

// classifyLoginError maps a failed POST /auth/login onto the messages shown
// to the user. Unclassified server errors keep their message verbatim. A
// 2xx body that cannot be decoded carries no token.
func classifyLoginError(err error) error {
	if errors.Is(err, api.ErrUnavailable) {
		return err
	}
	if errors.Is(err, api.ErrMalformedResponse) {
		return ErrTokenNotReceived
	}

	var apiErr *api.APIError
	if !errors.As(err, &apiErr) {
		return fmt.Errorf("%w: %w", ErrAuthenticationFailed, err)
	}

	switch {
	case apiErr.StatusCode == http.StatusNotFound:
		return ErrEmailNotFound
	case apiErr.StatusCode == http.StatusUnauthorized:
		return ErrIncorrectPassword
	case apiErr.StatusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "password"):
		return ErrIncorrectPassword
	case apiErr.Message != "":
		return apiErr
	default:
		return ErrAuthenticationFailed
	}
}
