// Package kv defines the key-value storage collaborator the record store
// sits on. Values are whole JSON documents; there are no partial updates.
package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store is the external storage contract: whole-value reads and writes by
// string key. Implementations live under internal/kv/<driver>/.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	RemoveMany(ctx context.Context, keys []string) error
}

// Pinger is implemented by drivers that can verify connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}
