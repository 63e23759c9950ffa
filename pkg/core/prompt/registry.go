package prompt

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Registry holds the loaded templates.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

var globalRegistry *Registry
var once sync.Once

// Get returns the global registry singleton, pre-populated with the
// built-in templates.
func Get() *Registry {
	once.Do(func() {
		globalRegistry = &Registry{templates: make(map[string]*Template)}
		for _, t := range builtins() {
			globalRegistry.templates[t.ID] = t
		}
	})
	return globalRegistry
}

// Register adds or replaces a template.
func (r *Registry) Register(t *Template) error {
	if t.ID == "" {
		return fmt.Errorf("prompt ID cannot be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.ID] = t
	return nil
}

// GetTemplate retrieves a template by ID.
func (r *Registry) GetTemplate(id string) (*Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.templates[id]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("prompt not found: %s", id)
}

// Count reports how many templates are registered.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.templates)
}

// LoadFromDirectory walks baseDir for .json template files and registers
// each, overriding built-ins with the same ID. Missing directory is an
// error so callers can log the fallback to built-ins.
func LoadFromDirectory(baseDir string) error {
	if _, err := os.Stat(baseDir); os.IsNotExist(err) {
		return fmt.Errorf("prompt directory not found: %s", baseDir)
	}

	registry := Get()
	return filepath.Walk(baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		var t Template
		if err := json.Unmarshal(data, &t); err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if t.ID == "" {
			t.ID = strings.TrimSuffix(filepath.Base(path), ".json")
		}
		return registry.Register(&t)
	})
}
