package todo

import (
	"time"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new items.
type IDGenerator interface {
	NewID() (string, error)
}

// UUIDGenerator issues version 7 UUIDs: a millisecond timestamp followed by
// random bits.
type UUIDGenerator struct{}

// NewID returns a fresh UUIDv7 string.
func (UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Clock returns the current time. Tests swap it for a fixed sequence.
type Clock func() time.Time
