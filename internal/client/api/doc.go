// Package api is the typed HTTP client for the GroupGo backend.
//
// # Overview
//
// Client is the transport contract consumed by the session manager and the
// services: Login, FetchProfile, Register, CreateEvent and ListEvents.
// HTTPClient implements it over net/http with JSON bodies, a per-request
// X-Request-ID and, for authenticated calls, an "Authorization: Bearer"
// header.
//
// # Error Handling
//
// Transport failures (connection refused, timeouts, cancelled contexts)
// match ErrUnavailable. Non-2xx responses are returned as *APIError carrying
// the status code and the server's "message"; a 401 additionally matches
// ErrUnauthorized via errors.Is.
package api
