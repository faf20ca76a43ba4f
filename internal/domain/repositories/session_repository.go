package repositories

import "context"

// SessionStorage is a session-scoped key/value store. A namespace groups the
// keys of one browser session; values are opaque strings.
type SessionStorage interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, namespace, key string) (value string, ok bool, err error)

	// Set stores value under key, refreshing the namespace expiry
	Set(ctx context.Context, namespace, key, value string) error

	// Delete removes the given keys; absent keys are ignored
	Delete(ctx context.Context, namespace string, keys ...string) error
}
