package effect

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrEffectNotFound is returned when a requested effect is not registered.
var ErrEffectNotFound = errors.New("effect not found")

// Registry discovers effects on disk and serves lookups by name.
type Registry struct {
	dir     string
	effects map[string]*Effect
	mu      sync.RWMutex
}

// NewRegistry creates a Registry over the given effects directory.
func NewRegistry(dir string) *Registry {
	return &Registry{
		dir:     dir,
		effects: make(map[string]*Effect),
	}
}

// Discover scans the effects directory. Each subdirectory with a
// manifest.json becomes a registered effect. A missing directory is not an
// error; it just means no effects.
func (r *Registry) Discover() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.effects = make(map[string]*Effect)

	info, err := os.Stat(r.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return nil
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		effectPath := filepath.Join(r.dir, entry.Name())
		manifestPath := filepath.Join(effectPath, "manifest.json")

		data, err := os.ReadFile(manifestPath)
		if err != nil {
			continue // no manifest, not an effect
		}

		var manifest Manifest
		if err := json.Unmarshal(data, &manifest); err != nil {
			continue // malformed manifest, skip it
		}
		if manifest.Name == "" || manifest.Executable == "" {
			continue
		}

		r.effects[manifest.Name] = &Effect{
			Manifest:   manifest,
			Path:       effectPath,
			Executable: filepath.Join(effectPath, manifest.Executable),
		}
	}

	return nil
}

// Get returns a registered effect by name.
func (r *Registry) Get(name string) (*Effect, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effect, ok := r.effects[name]
	if !ok {
		return nil, ErrEffectNotFound
	}
	return effect, nil
}

// List returns all registered effects.
func (r *Registry) List() []*Effect {
	r.mu.RLock()
	defer r.mu.RUnlock()

	effects := make([]*Effect, 0, len(r.effects))
	for _, e := range r.effects {
		effects = append(effects, e)
	}
	return effects
}
