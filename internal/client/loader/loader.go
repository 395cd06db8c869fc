// Package loader discards results of loads that a newer load has superseded.
//
// Views that reload on every filter change may have several requests in
// flight at once. Each load takes a ticket from a Guard; when it completes,
// its result is applied only if no newer ticket has been issued since.
package loader

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrStale is returned for a load whose result was discarded.
var ErrStale = errors.New("superseded by a newer load")

// Guard issues monotonically increasing tickets. The zero value is ready.
type Guard struct {
	seq atomic.Uint64
}

// Ticket identifies one load.
type Ticket struct {
	g *Guard
	n uint64
}

// Begin issues a ticket that supersedes every earlier one.
func (g *Guard) Begin() Ticket {
	return Ticket{g: g, n: g.seq.Add(1)}
}

// Current reports whether t is still the newest ticket.
func (t Ticket) Current() bool {
	return t.g.seq.Load() == t.n
}

// LoadFunc fetches a value for a filter.
type LoadFunc[F, T any] func(ctx context.Context, filter F) (T, error)

// Latest keeps the value of the newest completed load.
type Latest[F, T any] struct {
	guard Guard
	load  LoadFunc[F, T]

	mu     sync.RWMutex
	value  T
	filter F
	loaded bool
}

func NewLatest[F, T any](load func(ctx context.Context, filter F) (T, error)) *Latest[F, T] {
	return &Latest[F, T]{load: load}
}

// Load runs a load for filter. If another Load starts before this one
// finishes, the result is dropped and ErrStale returned, whether the load
// succeeded or not.
func (l *Latest[F, T]) Load(ctx context.Context, filter F) (T, error) {
	var zero T

	t := l.guard.Begin()
	v, err := l.load(ctx, filter)

	l.mu.Lock()
	defer l.mu.Unlock()

	if !t.Current() {
		return zero, ErrStale
	}
	if err != nil {
		return zero, err
	}

	l.value, l.filter, l.loaded = v, filter, true
	return v, nil
}

// Value returns the last applied value and the filter it was loaded with.
func (l *Latest[F, T]) Value() (T, F, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.filter, l.loaded
}
