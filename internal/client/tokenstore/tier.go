// Package tokenstore persists the session credential in one of two tiers:
// an ephemeral tier that lives as long as the client process and a durable
// tier in the local SQLite database that survives restarts. The remember
// flag passed to Save picks the tier.
package tokenstore

import (
	"context"
	"database/sql"
	"sync"

	"github.com/dmitrijs2005/groupgo/internal/client/repositories/metadata"
)

// Tier is one persistence substrate. Get returns "" when nothing is stored.
type Tier interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// MemoryTier keeps the token in process memory.
type MemoryTier struct {
	mu    sync.Mutex
	token string
}

func NewMemoryTier() *MemoryTier {
	return &MemoryTier{}
}

func (m *MemoryTier) Get(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *MemoryTier) Set(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryTier) Delete(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

const tokenKey = "token"

// SQLiteTier stores the token under a well-known metadata key.
type SQLiteTier struct {
	db *sql.DB
}

func NewSQLiteTier(db *sql.DB) *SQLiteTier {
	return &SQLiteTier{db: db}
}

func (s *SQLiteTier) Get(ctx context.Context) (string, error) {
	v, err := metadata.NewSQLiteRepository(s.db).Get(ctx, tokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *SQLiteTier) Set(ctx context.Context, token string) error {
	return metadata.NewSQLiteRepository(s.db).Set(ctx, tokenKey, []byte(token))
}

func (s *SQLiteTier) Delete(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, tokenKey)
}
