// Package session keeps server-side session state keyed by an opaque id
// carried in a signed cookie.
package session

import (
	"context"
	"time"
)

// Data is what a session remembers between requests.
type Data struct {
	UserID string `json:"userId,omitempty"`
}

// Store persists session data. Get returns common.ErrorNotFound for an
// unknown or expired id. Expiry is the store's responsibility.
type Store interface {
	Get(ctx context.Context, id string) (*Data, error)
	Set(ctx context.Context, id string, data Data, ttl time.Duration) error
	Destroy(ctx context.Context, id string) error
}
