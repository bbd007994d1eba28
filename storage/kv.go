// Package storage provides the persistent key-value substrate backing the
// session and catalog stores. Values are opaque strings; serialization is the
// caller's concern.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("storage: key not found")

// KV is a synchronous string key-value store. No transactions, no schema
// enforcement.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}
