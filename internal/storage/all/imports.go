// Package all wires every built-in storage backend into the storage
// factory. It exists purely for side effects: a blank import runs each
// backend's init, registering it under its kind.
//
// Importing this package makes the following kinds available:
//
//   - "postgres" (internal/storage/postgres)
//   - "sqlite"   (internal/storage/sqlite)
//
// Binaries that want only a subset can import the specific backend
// packages instead.
package all

import (
	_ "github.com/ferdo-djingga/client-data-cleaner/internal/storage/postgres"
	_ "github.com/ferdo-djingga/client-data-cleaner/internal/storage/sqlite"
)
