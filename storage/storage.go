// Package storage persists small keyed records. It is the server-side stand-in
// for the browser's localStorage: one serialized blob per key, last write wins,
// no versioning.
package storage

import "context"

// Store is a minimal key-value persistence surface. Get reports presence
// separately from errors so a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
