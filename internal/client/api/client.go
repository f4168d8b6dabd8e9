package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/groupgo/internal/logging"
)

const (
	RequestIDHeader     = "X-Request-ID"
	AuthorizationHeader = "Authorization"
)

// Client is the backend contract used by the session manager and services.
// Methods taking a token send it as a bearer credential.
type Client interface {
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	FetchProfile(ctx context.Context, token string) (*UserProfile, error)
	Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error)
	CreateEvent(ctx context.Context, token string, event NewEvent) error
	ListEvents(ctx context.Context, token string) (*EventList, error)
}

type HTTPClient struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        logging.Logger
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient returns a client for the backend at baseURL. A zero timeout
// leaves deadlines to the caller's context. If httpClient is nil,
// http.DefaultClient is used.
func NewHTTPClient(baseURL string, timeout time.Duration, httpClient *http.Client, log logging.Logger) *HTTPClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: httpClient,
		log:        log.With("component", "api"),
	}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", LoginRequest{Login: email, Password: password}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) FetchProfile(ctx context.Context, token string) (*UserProfile, error) {
	var profile UserProfile
	if err := c.do(ctx, http.MethodGet, "/user/profile", token, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (c *HTTPClient) Register(ctx context.Context, req RegisterRequest) (*RegisterResponse, error) {
	var resp RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/user", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) CreateEvent(ctx context.Context, token string, event NewEvent) error {
	if event.Guests == nil {
		event.Guests = []string{}
	}
	return c.do(ctx, http.MethodPost, "/event", token, event, nil)
}

func (c *HTTPClient) ListEvents(ctx context.Context, token string) (*EventList, error) {
	var list EventList
	if err := c.do(ctx, http.MethodGet, "/event", token, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// do sends one JSON request and decodes a 2xx body into out (if non-nil).
func (c *HTTPClient) do(ctx context.Context, method, path, token string, body, out any) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	if token != "" {
		req.Header.Set(AuthorizationHeader, "Bearer "+token)
	}

	log := c.log.With("method", method, "path", path, "request_id", requestID)
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err)
		return fmt.Errorf("%w: %s %s: %w", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	log.Debug(ctx, "request finished", "status", resp.StatusCode, "elapsed", time.Since(started))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: decode %s %s response: %w", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// readMessage pulls the "message" field out of an error body. Validation
// failures may send a list of messages; those are joined with "; ".
func readMessage(r io.Reader) string {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil || len(payload.Message) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(payload.Message, &single); err == nil {
		return single
	}
	var many []string
	if err := json.Unmarshal(payload.Message, &many); err == nil {
		return strings.Join(many, "; ")
	}
	return ""
}
