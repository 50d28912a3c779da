package repository

import "context"

// KeyValueStore is the client's local storage: a flat string map scoped to a
// single client instance.
type KeyValueStore interface {
	// Get returns domain.ErrKeyNotFound when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	// Clear removes every key owned by this store instance.
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}
