package tokenstore

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmitrijs2005/groupgo/internal/logging"
)

// Store is the only writer of the persisted credential. Storage failures
// are logged and swallowed: a credential that cannot be written simply
// does not survive, and one that cannot be read is reported absent.
type Store struct {
	durable   Tier
	ephemeral Tier
	log       logging.Logger
	now       func() time.Time
}

func New(durable, ephemeral Tier, log logging.Logger) *Store {
	return &Store{
		durable:   durable,
		ephemeral: ephemeral,
		log:       log.With("component", "tokenstore"),
		now:       time.Now,
	}
}

// Save writes token to the durable tier when remember is set, otherwise to
// the ephemeral tier, and removes it from the other tier.
func (s *Store) Save(ctx context.Context, token string, remember bool) {
	target, other := s.ephemeral, s.durable
	if remember {
		target, other = s.durable, s.ephemeral
	}

	if err := other.Delete(ctx); err != nil {
		s.log.Warn(ctx, "failed to clear token tier", "error", err)
	}
	if err := target.Set(ctx, token); err != nil {
		s.log.Warn(ctx, "failed to save token", "remember", remember, "error", err)
	}
}

// Load returns the stored credential, preferring the durable tier. A JWT
// whose exp claim has passed is cleared and reported absent.
func (s *Store) Load(ctx context.Context) (string, bool) {
	token := s.read(ctx, s.durable)
	if token == "" {
		token = s.read(ctx, s.ephemeral)
	}
	if token == "" {
		return "", false
	}

	if s.expired(token) {
		s.log.Info(ctx, "stored token expired, discarding")
		s.Clear(ctx)
		return "", false
	}
	return token, true
}

// Has reports whether Load would return a credential.
func (s *Store) Has(ctx context.Context) bool {
	_, ok := s.Load(ctx)
	return ok
}

// Clear removes the credential from both tiers.
func (s *Store) Clear(ctx context.Context) {
	for _, t := range []Tier{s.durable, s.ephemeral} {
		if err := t.Delete(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear token tier", "error", err)
		}
	}
}

func (s *Store) read(ctx context.Context, t Tier) string {
	token, err := t.Get(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read token tier", "error", err)
		return ""
	}
	return token
}

// expired inspects exp without verifying the signature; the client has no
// key and the server stays the authority. Opaque tokens never expire here.
func (s *Store) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(s.now())
}
