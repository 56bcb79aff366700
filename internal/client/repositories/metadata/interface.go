// Package metadata stores the CLI session (username and tokens) as key/value
// pairs in the local SQLite database.
package metadata

import (
	"context"
)

// Key names a cached session value.
type Key string

const (
	KeyUsername     Key = "username"
	KeyAccessToken  Key = "access_token"
	KeyRefreshToken Key = "refresh_token"
)

type Repository interface {
	// Get returns "" when the key is absent.
	Get(ctx context.Context, key Key) (string, error)
	Set(ctx context.Context, key Key, value string) error
	Delete(ctx context.Context, keys ...Key) error
	List(ctx context.Context) (map[Key]string, error)
	Clear(ctx context.Context) error
}
