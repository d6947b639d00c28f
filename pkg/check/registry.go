package check

import (
	"cmp"
	"slices"
	"sync"
)

// Registry holds all registered checks.
type Registry struct {
	mu     sync.RWMutex
	byID   map[string]Check
	byName map[string]Check
}

// NewRegistry creates an empty check registry.
func NewRegistry() *Registry {
	return &Registry{
		byID:   make(map[string]Check),
		byName: make(map[string]Check),
	}
}

// Register adds a check to the registry.
// If a check with the same ID already exists, it is replaced.
func (r *Registry) Register(chk Check) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if previous, ok := r.byID[chk.ID()]; ok {
		delete(r.byName, previous.Name())
	}
	r.byID[chk.ID()] = chk
	r.byName[chk.Name()] = chk
}

// Get retrieves a check by ID or name.
// It tries ID first, then falls back to name lookup.
func (r *Registry) Get(key string) (Check, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if chk, ok := r.byID[key]; ok {
		return chk, true
	}
	if chk, ok := r.byName[key]; ok {
		return chk, true
	}
	return nil, false
}

// Checks returns all registered checks sorted by ID.
func (r *Registry) Checks() []Check {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Check, 0, len(r.byID))
	for _, chk := range r.byID {
		result = append(result, chk)
	}

	slices.SortFunc(result, func(a, b Check) int {
		return cmp.Compare(a.ID(), b.ID())
	})

	return result
}

// IDs returns all registered check IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byID))
	for id := range r.byID {
		result = append(result, id)
	}

	slices.Sort(result)
	return result
}

// DefaultRegistry is the global registry for built-in checks.
// Checks register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for check registration
var DefaultRegistry = NewRegistry()
