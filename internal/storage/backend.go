package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Backend is a durable local key-value store.
type Backend interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// Backend kinds accepted by Open.
const (
	KindFile   = "file"
	KindSQLite = "sqlite"
	KindMemory = "memory"
	KindBadger = "badger"
)

// Kinds lists the accepted backend names.
var Kinds = []string{KindFile, KindSQLite, KindBadger, KindMemory}

// ErrUnavailable is returned by backends that refuse writes.
var ErrUnavailable = errors.New("storage unavailable")

// Open constructs a backend of the given kind rooted at dir.
func Open(ctx context.Context, kind, dir string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "", KindFile:
		return NewFileBackend(dir)
	case KindSQLite:
		return OpenSQLite(ctx, dir)
	case KindBadger:
		return OpenBadger(dir)
	case KindMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}
