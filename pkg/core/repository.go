package core

import "context"

// Storage defines the contract for persisting the address book.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (JSON/YAML file, SQLite).
type Storage interface {
	// Initialize ensures the underlying storage is ready (e.g. create directories, schema).
	Initialize(ctx context.Context) error

	// Load reads the persisted address book. When nothing has been saved yet it
	// returns an empty address book together with ErrNoData.
	Load(ctx context.Context) (*AddressBook, error)

	// Save persists the whole address book.
	Save(ctx context.Context, ab ReadOnlyAddressBook) error
}

// Watchable defines an interface for storages that can report external changes.
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Closer is implemented by storages holding resources (e.g. database handles).
type Closer interface {
	Close() error
}
