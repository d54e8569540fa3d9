package contract

import (
	"context"
	"time"
)

// ICache stores JSON encoded values under string keys.
type ICache interface {
	// GetJSON decodes the cached value into dest and reports whether it was found.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeletePrefix(ctx context.Context, prefix string) error
}
