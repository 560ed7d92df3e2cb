// Package themes provides a theme registry and preset management for the TUI.
package themes

import (
	"sync"
)

// PresetName identifies a built-in theme preset
type PresetName string

const (
	PresetDark  PresetName = "dark"
	PresetLight PresetName = "light"
)

// Registry manages theme presets and the active theme
type Registry struct {
	mu         sync.RWMutex
	presets    map[PresetName]*Theme
	active     *Theme
	activeName PresetName
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the global theme registry
func Global() *Registry {
	once.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry creates a new theme registry with built-in presets
func NewRegistry() *Registry {
	r := &Registry{
		presets: make(map[PresetName]*Theme),
	}

	r.presets[PresetDark] = DarkTheme()
	r.presets[PresetLight] = LightTheme()

	// Default to dark theme
	r.active = r.presets[PresetDark]
	r.activeName = PresetDark

	return r
}

// Active returns the currently active theme
func (r *Registry) Active() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// ActiveName returns the name of the currently active preset
func (r *Registry) ActiveName() PresetName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeName
}

// SetActive sets the active theme by preset name. Unknown names leave
// the active theme unchanged and return false.
func (r *Registry) SetActive(name PresetName) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	theme, ok := r.presets[name]
	if !ok {
		return false
	}
	r.active = theme
	r.activeName = name
	return true
}

// ListPresets returns the available preset names
func (r *Registry) ListPresets() []PresetName {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]PresetName, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, name)
	}
	return names
}
