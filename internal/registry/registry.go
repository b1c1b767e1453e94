// Package registry provides a global registry of render driver factories.
// Drivers register themselves in init() functions, allowing the CLI to
// discover and instantiate them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/brick-breaker/internal/render"
)

// DriverInfo contains metadata about a registered driver.
type DriverInfo struct {
	Name        string
	Description string
}

// Factory creates a backend whose framebuffer is width x height pixels.
type Factory func(width, height int) render.Backend

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a driver's init() function.
// Panics if a driver with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: driver %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered drivers, sorted by name.
func List() []DriverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DriverInfo, 0, len(factories))
	for name := range factories {
		result = append(result, DriverInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a driver by name.
// Returns an error if the name is not registered.
func Create(name string, width, height int) (render.Backend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown driver %q", name)
	}

	return f(width, height), nil
}

// Exists checks if a driver with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
