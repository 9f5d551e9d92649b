// Package prefs persists ticklist UI preferences. Preferences live in their
// own key of the same storage backend as the list, encoded as TOML.
package prefs

import (
	"context"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/renatNoore/to-do-app/internal/storage"
)

// Key is the storage slot holding preferences.
const Key = "todo-app:prefs:v1"

// Prefs holds user preferences. The active filter is not stored:
// it always starts at "all".
type Prefs struct {
	Theme string `toml:"theme"`
}

// Load reads preferences, falling back to fallbackTheme when the slot is
// missing, unreadable or empty.
func Load(ctx context.Context, backend storage.Backend, fallbackTheme string) Prefs {
	prefs := Prefs{Theme: fallbackTheme}
	if backend == nil {
		return prefs
	}

	raw, ok, err := backend.Get(ctx, Key)
	if err != nil || !ok {
		return prefs // Graceful degradation
	}

	var stored Prefs
	if err := toml.Unmarshal(raw, &stored); err != nil {
		return prefs // Graceful degradation
	}
	if theme := strings.TrimSpace(stored.Theme); theme != "" {
		prefs.Theme = theme
	}
	return prefs
}

// Save writes preferences to the backend.
func Save(ctx context.Context, backend storage.Backend, p Prefs) error {
	if backend == nil {
		return fmt.Errorf("no storage backend")
	}
	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := backend.Set(ctx, Key, bytes); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
