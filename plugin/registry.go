package plugin

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a fresh plugin instance. Each launch gets its own instance
// so plugin state never leaks across runs.
type Factory func() *Plugin

// Info is the launcher-facing metadata for a registered plugin.
type Info struct {
	ID          string
	Name        string
	Description string
	Category    Category
}

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	infos     = make(map[string]Info)
)

// Register adds a plugin factory under a stable id. Called from plugin
// package init() functions; duplicate ids are a programming error and panic.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("plugin: %q already registered", id))
	}
	factories[id] = f

	p := f()
	infos[id] = Info{
		ID:          id,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
	}
}

// List returns metadata for every registered plugin, sorted by id.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]Info, 0, len(infos))
	for _, info := range infos {
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create instantiates a registered plugin by id.
func Create(id string) (*Plugin, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("plugin: unknown id %q", id)
	}
	return f(), nil
}

// Exists reports whether a plugin id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
