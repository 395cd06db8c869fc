// Package session keeps the bearer credential of the current user.
//
// Exactly one credential exists per local profile; its absence means the
// client is unauthenticated. The store does not enforce expiry: an expired
// token is discovered only when the server rejects a request.
//
// Only the auth controller and the HTTP client's 401 handler write to a Store.
package session

import (
	"context"
	"time"
)

// Store is the persisted credential slot.
type Store interface {
	// Get returns the credential and true, or "" and false when none is held.
	Get(ctx context.Context) (string, bool, error)
	// Set replaces the held credential.
	Set(ctx context.Context, token string) error
	// Clear drops the credential. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Timestamped is implemented by stores that record when the credential was
// written. ok is false when no credential is held.
type Timestamped interface {
	SavedAt(ctx context.Context) (at time.Time, ok bool, err error)
}
