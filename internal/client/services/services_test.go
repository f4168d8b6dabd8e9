package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/client/tokenstore"
	"github.com/dmitrijs2005/groupgo/internal/logging"
)

type fakeAPI struct {
	registerReq *api.RegisterRequest
	registerErr error

	createToken string
	createEvent *api.NewEvent
	createErr   error

	listToken string
	list      *api.EventList
	listErr   error
}

func (f *fakeAPI) Login(context.Context, string, string) (*api.LoginResponse, error) {
	return nil, errors.New("not used")
}
func (f *fakeAPI) FetchProfile(context.Context, string) (*api.UserProfile, error) {
	return nil, errors.New("not used")
}
func (f *fakeAPI) Register(_ context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	f.registerReq = &req
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &api.RegisterResponse{Token: "ignored"}, nil
}
func (f *fakeAPI) CreateEvent(_ context.Context, token string, e api.NewEvent) error {
	f.createToken, f.createEvent = token, &e
	return f.createErr
}
func (f *fakeAPI) ListEvents(_ context.Context, token string) (*api.EventList, error) {
	f.listToken = token
	return f.list, f.listErr
}

func newTokens(token string) *tokenstore.Store {
	s := tokenstore.New(tokenstore.NewMemoryTier(), tokenstore.NewMemoryTier(), logging.NewNopLogger())
	if token != "" {
		s.Save(context.Background(), token, false)
	}
	return s
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
		msg  string
	}{
		{"no username", Registration{Email: "a@b", Password: "x", Confirm: "x"}, "username is required"},
		{"bad email", Registration{Username: "ana", Email: "ana", Password: "x", Confirm: "x"}, "a valid email is required"},
		{"no password", Registration{Username: "ana", Email: "a@b"}, "password is required"},
		{"mismatch", Registration{Username: "ana", Email: "a@b", Password: "x", Confirm: "y"}, "passwords do not match"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeAPI{}
			err := NewAccountService(f, logging.NewNopLogger()).Register(context.Background(), tc.reg)
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tc.msg)
			assert.Nil(t, f.registerReq, "invalid forms never reach the server")
		})
	}
}

func TestRegister_SendsTrimmedForm(t *testing.T) {
	f := &fakeAPI{}
	err := NewAccountService(f, logging.NewNopLogger()).Register(context.Background(),
		Registration{Username: " ana ", Email: " ana@example.com", Password: "pw", Confirm: "pw"})
	require.NoError(t, err)
	assert.Equal(t, &api.RegisterRequest{Username: "ana", Email: "ana@example.com", Password: "pw"}, f.registerReq)
}

func TestRegister_ServerMessageVerbatim(t *testing.T) {
	f := &fakeAPI{registerErr: &api.APIError{StatusCode: 409, Message: "Username already taken"}}
	err := NewAccountService(f, logging.NewNopLogger()).Register(context.Background(),
		Registration{Username: "ana", Email: "a@b", Password: "pw", Confirm: "pw"})
	require.EqualError(t, err, "Username already taken")
}

func TestRequestPasswordReset(t *testing.T) {
	svc := NewAccountService(&fakeAPI{}, logging.NewNopLogger())
	require.NoError(t, svc.RequestPasswordReset(context.Background(), "@ana"))
	require.ErrorIs(t, svc.RequestPasswordReset(context.Background(), "  "), ErrValidation)
}

func TestCreate_RequiresCredential(t *testing.T) {
	f := &fakeAPI{}
	err := NewEventService(f, newTokens(""), logging.NewNopLogger()).Create(context.Background(), "Picnic", nil)
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Nil(t, f.createEvent)
}

func TestCreate_NormalisesGuests(t *testing.T) {
	f := &fakeAPI{}
	err := NewEventService(f, newTokens("tok"), logging.NewNopLogger()).Create(context.Background(),
		" Picnic ", []string{"b@x", " a@x", "", "b@x", "a@x "})
	require.NoError(t, err)
	assert.Equal(t, "tok", f.createToken)
	assert.Equal(t, &api.NewEvent{Name: "Picnic", Guests: []string{"b@x", "a@x"}}, f.createEvent)
}

func TestCreate_EmptyName(t *testing.T) {
	err := NewEventService(&fakeAPI{}, newTokens("tok"), logging.NewNopLogger()).Create(context.Background(), " ", nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestCreate_ServerMessageVerbatim(t *testing.T) {
	f := &fakeAPI{createErr: &api.APIError{StatusCode: 400, Message: "guest not found: z@x"}}
	err := NewEventService(f, newTokens("tok"), logging.NewNopLogger()).Create(context.Background(), "Picnic", []string{"z@x"})
	require.EqualError(t, err, "guest not found: z@x")
}

func TestCreate_UnauthorizedClearsToken(t *testing.T) {
	tokens := newTokens("tok")
	f := &fakeAPI{createErr: &api.APIError{StatusCode: 401}}
	err := NewEventService(f, tokens, logging.NewNopLogger()).Create(context.Background(), "Picnic", nil)
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.False(t, tokens.Has(context.Background()))
}

func TestList_Success(t *testing.T) {
	want := &api.EventList{ManagedEvents: []api.Event{{ID: "e1", Name: "Picnic"}}}
	f := &fakeAPI{list: want}
	got, err := NewEventService(f, newTokens("tok"), logging.NewNopLogger()).List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "tok", f.listToken)
}

func TestList_GenericError(t *testing.T) {
	f := &fakeAPI{listErr: &api.APIError{StatusCode: 500, Message: "boom"}}
	_, err := NewEventService(f, newTokens("tok"), logging.NewNopLogger()).List(context.Background())
	require.ErrorIs(t, err, ErrEventsFailed)
	assert.Equal(t, "failed to load events: boom", err.Error())
}

func TestList_UnauthorizedClearsToken(t *testing.T) {
	tokens := newTokens("tok")
	f := &fakeAPI{listErr: &api.APIError{StatusCode: 401}}
	_, err := NewEventService(f, tokens, logging.NewNopLogger()).List(context.Background())
	require.ErrorIs(t, err, api.ErrUnauthorized)
	assert.NotErrorIs(t, err, ErrEventsFailed)
	assert.False(t, tokens.Has(context.Background()))
}

func TestList_WithoutCredential(t *testing.T) {
	_, err := NewEventService(&fakeAPI{}, newTokens(""), logging.NewNopLogger()).List(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestEvents_OverHTTP(t *testing.T) {
	created := make(chan api.NewEvent, 1)
	r := mux.NewRouter()
	r.HandleFunc("/event", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
		var e api.NewEvent
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&e))
		created <- e
		w.WriteHeader(http.StatusCreated)
	}).Methods(http.MethodPost)
	r.HandleFunc("/event", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewEncoder(w).Encode(api.EventList{GuestEvents: []api.Event{{ID: "e2", Name: "Party"}}})
	}).Methods(http.MethodGet)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client := api.NewHTTPClient(srv.URL, time.Second, srv.Client(), logging.NewNopLogger())
	svc := NewEventService(client, newTokens("tok"), logging.NewNopLogger())

	require.NoError(t, svc.Create(context.Background(), "Party", []string{"bo@x"}))
	assert.Equal(t, api.NewEvent{Name: "Party", Guests: []string{"bo@x"}}, <-created)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.GuestEvents, 1)
	assert.Equal(t, "Party", list.GuestEvents[0].Name)
}

func TestUniqueGuests_EmptyInput(t *testing.T) {
	assert.Equal(t, []string{}, UniqueGuests(nil))
}
