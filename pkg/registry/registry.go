package registry

import (
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/preload/pkg/errors"
)

// Registry is a generic registry that is initialized once and read many times
type Registry[T any] interface {
	// Initialize populates the registry. It fails with ErrAlreadyInitialized
	// on every call after the first successful one.
	Initialize(items map[string]T) error
	// Get retrieves an item from the registry
	Get(name string) (T, error)
	// Has checks if an item is registered
	Has(name string) bool
	// Keys returns all registered names in sorted order
	Keys() []string
	// Count returns the number of registered items
	Count() int
	// Initialized reports whether Initialize has succeeded
	Initialized() bool
}

// snapshot is never modified after it is published
type snapshot[T any] struct {
	items map[string]T
	keys  []string
}

// registry is the internal implementation of Registry
type registry[T any] struct {
	mu   sync.Mutex
	snap atomic.Pointer[snapshot[T]]
}

// New creates a new, uninitialized Registry
func New[T any]() Registry[T] {
	return &registry[T]{}
}

// Initialize copies items into the registry and freezes it
func (r *registry[T]) Initialize(items map[string]T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if current := r.snap.Load(); current != nil {
		return errors.New(errors.ErrAlreadyInitialized, "registry is already initialized").
			WithDetail(errors.DetailCount, len(current.items))
	}

	snap := &snapshot[T]{
		items: make(map[string]T, len(items)),
		keys:  make([]string, 0, len(items)),
	}
	for name, item := range items {
		if name == "" {
			return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
		}
		snap.items[name] = item
		snap.keys = append(snap.keys, name)
	}
	sort.Strings(snap.keys)

	r.snap.Store(snap)
	return nil
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	if snap := r.snap.Load(); snap != nil {
		if item, exists := snap.items[name]; exists {
			return item, nil
		}
	}
	var zero T
	return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name).
		WithDetail(errors.DetailKey, name)
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	snap := r.snap.Load()
	if snap == nil {
		return false
	}
	_, exists := snap.items[name]
	return exists
}

// Keys returns a fresh copy of the registered names in sorted order
func (r *registry[T]) Keys() []string {
	snap := r.snap.Load()
	if snap == nil {
		return []string{}
	}
	keys := make([]string, len(snap.keys))
	copy(keys, snap.keys)
	return keys
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	snap := r.snap.Load()
	if snap == nil {
		return 0
	}
	return len(snap.items)
}

// Initialized reports whether the registry has been populated
func (r *registry[T]) Initialized() bool {
	return r.snap.Load() != nil
}

// MustInitialize initializes the registry and panics if that fails.
// This is useful at program start, where a failure is a programming error.
func MustInitialize[T any](reg Registry[T], items map[string]T) {
	if err := reg.Initialize(items); err != nil {
		panic(fmt.Sprintf("failed to initialize registry: %v", err))
	}
}

// MustGet retrieves an item and panics if not found
// This is useful when the item must exist
func MustGet[T any](reg Registry[T], name string) T {
	item, err := reg.Get(name)
	if err != nil {
		panic(fmt.Sprintf("failed to get %s: %v", name, err))
	}
	return item
}
