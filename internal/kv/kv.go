// Package kv defines the persistence adapter boundary: an asynchronous
// key-value store with no ordering or transaction guarantees across keys.
package kv

import "context"

// Adapter is the outbound port every storage backend implements.
type Adapter interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent, which is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}
