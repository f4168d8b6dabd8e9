package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/groupgo/internal/client/api"
	"github.com/dmitrijs2005/groupgo/internal/logging"
)

// Credentials is the read/clear view of the token store the event service
// needs.
type Credentials interface {
	Load(ctx context.Context) (string, bool)
	Clear(ctx context.Context)
}

type EventService interface {
	Create(ctx context.Context, name string, guests []string) error
	List(ctx context.Context) (*api.EventList, error)
}

type eventService struct {
	client api.Client
	tokens Credentials
	log    logging.Logger
}

func NewEventService(client api.Client, tokens Credentials, log logging.Logger) EventService {
	return &eventService{client: client, tokens: tokens, log: log.With("component", "events")}
}

// Create posts a new event. Guests are trimmed, blanks dropped and
// duplicates removed keeping first occurrence. Server failures are returned
// unchanged.
func (s *eventService) Create(ctx context.Context, name string, guests []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: event name is required", ErrValidation)
	}

	token, ok := s.tokens.Load(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	guests = UniqueGuests(guests)
	if err := s.client.CreateEvent(ctx, token, api.NewEvent{Name: name, Guests: guests}); err != nil {
		return s.checkUnauthorized(ctx, err)
	}
	s.log.Info(ctx, "event created", "guests", len(guests))
	return nil
}

// List fetches managed and guest events. Failures are reported with a
// generic message; the cause stays in the chain.
func (s *eventService) List(ctx context.Context) (*api.EventList, error) {
	token, ok := s.tokens.Load(ctx)
	if !ok {
		return nil, ErrNotAuthenticated
	}

	list, err := s.client.ListEvents(ctx, token)
	if err != nil {
		if err := s.checkUnauthorized(ctx, err); errors.Is(err, api.ErrUnauthorized) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrEventsFailed, err)
	}
	return list, nil
}

func (s *eventService) checkUnauthorized(ctx context.Context, err error) error {
	if errors.Is(err, api.ErrUnauthorized) {
		s.log.Info(ctx, "credential rejected, clearing")
		s.tokens.Clear(ctx)
		return api.ErrUnauthorized
	}
	return err
}

// UniqueGuests normalises a guest list for submission.
func UniqueGuests(guests []string) []string {
	seen := make(map[string]struct{}, len(guests))
	out := make([]string, 0, len(guests))
	for _, g := range guests {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		if _, dup := seen[g]; dup {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}
