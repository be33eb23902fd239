package domain

import "context"

// StoreError represents an error originating from the persistent store.
type StoreError string

func (e StoreError) Error() string {
	return string(e)
}

// ErrKeyNotFound is returned when a key has no persisted value.
const ErrKeyNotFound = StoreError("store: key not found")

// Store defines the interface (port) for durable key-value persistence.
// Values are JSON documents encoded as strings. Implementations of this
// interface are the adapters (file, sqlite, redis).
type Store interface {
	// Get retrieves the value stored at key.
	// It returns ErrKeyNotFound if the key has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set durably writes value at key, overwriting any existing value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes the value at key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Ping checks the health of the underlying storage.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close() error
}
