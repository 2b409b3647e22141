package blocktypes

import (
	"embed"
	"fmt"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// Registry holds the block-type catalog loaded from embedded YAML.
type Registry struct {
	types map[string]BlockType
	mu    sync.RWMutex
}

// NewRegistry creates a new block-type registry and loads the embedded
// YAML catalog
func NewRegistry() (*Registry, error) {
	r := &Registry{
		types: make(map[string]BlockType),
	}

	if err := r.loadCatalogFile("blocks"); err != nil {
		return nil, fmt.Errorf("failed to load block catalog: %w", err)
	}

	return r, nil
}

// loadCatalogFile loads one embedded catalog YAML file
func (r *Registry) loadCatalogFile(name string) error {
	filename := fmt.Sprintf("config/%s.yaml", name)
	data, err := configFiles.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", filename, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for id, bt := range c.Blocks {
		bt.ID = id
		r.types[id] = bt
	}

	return nil
}

// Get returns the block type for an identifier
func (r *Registry) Get(id string) (*BlockType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bt, ok := r.types[id]
	if !ok {
		return nil, fmt.Errorf("unknown block type: %s", id)
	}
	return &bt, nil
}

// Known reports whether the identifier names a catalogued block type
func (r *Registry) Known(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.types[id]
	return ok
}

// FileBearing returns the sorted identifiers of block types whose
// metadata carries an uploaded file
func (r *Registry) FileBearing() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, bt := range r.types {
		if bt.FileBearing {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
