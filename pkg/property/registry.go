package property

import (
	"cmp"
	"fmt"
	"slices"
	"sync"
)

// Registry maps vendor and product ids to driver factories.
//
// All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[DeviceID]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[DeviceID]Factory)}
}

// Register adds a factory for id. Registering the same id twice returns
// ErrAlreadyRegistered and leaves the first registration in place.
func (r *Registry) Register(id DeviceID, f Factory) error {
	if f == nil {
		return fmt.Errorf("register %s: nil factory", id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[id]; ok {
		return fmt.Errorf("register %s: %w", id, ErrAlreadyRegistered)
	}
	r.factories[id] = f
	return nil
}

// Lookup returns the factory registered for id.
func (r *Registry) Lookup(id DeviceID) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[id]
	return f, ok
}

// Open builds the driver registered for id on dev.
func (r *Registry) Open(id DeviceID, dev Device) (Driver, error) {
	f, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("open %s: %w", id, ErrNoDriver)
	}
	return f(dev), nil
}

// IDs lists the registered device ids ordered by vendor then product.
func (r *Registry) IDs() []DeviceID {
	r.mu.RLock()
	ids := make([]DeviceID, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	slices.SortFunc(ids, func(a, b DeviceID) int {
		if c := cmp.Compare(a.Vendor, b.Vendor); c != 0 {
			return c
		}
		return cmp.Compare(a.Product, b.Product)
	})
	return ids
}
