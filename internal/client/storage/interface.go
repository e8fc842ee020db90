package storage

import (
	"context"
)

// Keys under which the client keeps its state. They mirror the names the
// browser panel used in localStorage.
const (
	KeyToken  = "token"
	KeyUser   = "user"
	KeyAPIURL = "api_url"
)

// KV is a durable key/value map. Get returns (nil, nil) for a missing key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Repository is a KV that can also apply a group of writes atomically.
type Repository interface {
	KV
	// Atomically runs fn against a transactional view of the store. All
	// writes made through kv are committed together or not at all.
	Atomically(ctx context.Context, fn func(ctx context.Context, kv KV) error) error
}
