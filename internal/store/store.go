package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Stable keys for the three persisted collections. Every driver stores the
// same JSON text under the same keys, so swapping drivers migrates nothing
// but the bytes.
const (
	KeyUsers        = "ariomuse:users"
	KeyCompositions = "ariomuse:compositions"
	KeySession      = "ariomuse:session"
)

// ErrCorrupt reports that stored bytes exist but do not parse as the
// expected shape. It is surfaced, never silently repaired: resetting a
// collection destroys user data and is an operator decision.
var ErrCorrupt = errors.New("store: corrupt record")

// Store is the raw key-value contract shared by all drivers. Load returns
// found=false when the key has never been written. Save replaces the whole
// value; there are no partial updates.
type Store interface {
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}

// LoadJSON reads key and unmarshals it into out. Returns found=false and
// leaves out untouched when the key is absent. A present-but-unparseable
// value fails with ErrCorrupt.
func LoadJSON(ctx context.Context, s Store, key string, out interface{}) (bool, error) {
	raw, found, err := s.Load(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("%w: key %s: %v", ErrCorrupt, key, err)
	}
	return true, nil
}

// SaveJSON marshals v and replaces the value under key.
func SaveJSON(ctx context.Context, s Store, key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return s.Save(ctx, key, raw)
}
