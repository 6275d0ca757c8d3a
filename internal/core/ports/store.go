package ports

import "context"

// Store is the device-local secure key-value store. Values are opaque
// strings (callers JSON-encode at the boundary). Reads of missing keys
// return domain.ErrKeyNotFound.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
