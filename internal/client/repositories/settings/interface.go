// Package settings persists client-side key-value settings in the local
// sqlite database.
package settings

import "context"

// Repository is a durable string key-value store.
//
// Get returns ("", nil) when the key is absent; storage failures are
// returned as errors and left to the caller to interpret.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
