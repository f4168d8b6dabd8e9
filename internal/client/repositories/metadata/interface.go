// Package metadata stores small key/value records in the client's local
// SQLite database. The durable credential tier lives here.
package metadata

import (
	"context"
)

// Repository is a byte-valued key/value store. Get reports a missing key as
// (nil, nil).
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
