// Package storage contains the storage-agnostic contract for loading a
// cleaned roster into a database, plus a factory keyed by backend kind.
// Backends register themselves from init, so callers depend only on
// this package and select a backend by configuration.
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Config selects and configures a storage backend.
type Config struct {
	// Kind names a registered backend, e.g. "postgres" or "sqlite".
	Kind string

	// DSN is the backend connection string.
	DSN string

	// Table is the destination table name.
	Table string

	// AutoCreateTable creates the destination table (all-TEXT columns)
	// when it does not exist yet.
	AutoCreateTable bool
}

// Repository is the minimal sink interface. Roster cells are text or
// absent, so rows are passed as []any holding string or nil, aligned to
// the columns order.
type Repository interface {
	// EnsureTable creates the destination table with the given TEXT
	// columns if it does not already exist.
	EnsureTable(ctx context.Context, columns []string) error

	// InsertRows bulk-inserts rows aligned to columns and returns the
	// number of rows written.
	InsertRows(ctx context.Context, columns []string, rows [][]any) (int64, error)

	// Close releases the backend's resources.
	Close() error
}

// Factory constructs a Repository for a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a backend available under kind. Called from backend
// package init; duplicate registration panics to surface wiring bugs.
func Register(kind string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[kind]; dup {
		panic(fmt.Sprintf("storage: duplicate backend %q", kind))
	}
	factories[kind] = f
}

// New opens a Repository for cfg.Kind.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	f, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("storage: unknown kind %q (registered: %v)", cfg.Kind, Kinds())
	}
	return f(ctx, cfg)
}

// Kinds lists the registered backend kinds, sorted.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(factories))
	for k := range factories {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
