package backend

import (
	"fmt"
	"sort"
	"sync"

	"github.com/gogpu/present/gpucore"
)

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendWGPU}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the sorted list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// Open creates an instance of the named backend.
func Open(name string, opts Options) (gpucore.Instance, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return factory(opts)
}

// Default returns the name of the best available backend based on priority.
// Returns "" if no backends are registered.
func Default() string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range backendPriority {
		if _, ok := backends[name]; ok {
			return name
		}
	}

	// Fallback: first available in name order
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return names[0]
}

// OpenDefault creates an instance of the default backend.
func OpenDefault(opts Options) (gpucore.Instance, error) {
	name := Default()
	if name == "" {
		return nil, ErrBackendNotAvailable
	}
	return Open(name, opts)
}
