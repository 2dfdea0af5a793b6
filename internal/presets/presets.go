// Package presets keeps the named masks available to the CLI, the server and
// the viewer.
package presets

import (
	"sort"
	"sync"

	"spritegen/internal/sprite"
	sgerrors "spritegen/pkg/errors"
)

var (
	mu      sync.RWMutex
	entries = map[string]*sprite.Mask{}
)

// Register adds or replaces the mask stored under name.
func Register(name string, m *sprite.Mask) {
	if name == "" || m == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	entries[name] = m
}

// Get returns the mask registered under name.
func Get(name string) (*sprite.Mask, error) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := entries[name]
	if !ok {
		return nil, sgerrors.New(sgerrors.ErrCodeNotFound, "unknown preset %q", name)
	}
	return m, nil
}

// Names lists registered presets in lexical order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
