package registry

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/spline/pkg/errors"
)

// Registry is a read-only set of items addressed by name
type Registry[T any] interface {
	// Get retrieves an item from the registry
	Get(name string) (T, error)

	// Has checks if an item is registered
	Has(name string) bool

	// List returns all registered names in sorted order
	List() []string

	// Count returns the number of registered items
	Count() int
}

// registry is the frozen implementation of Registry
type registry[T any] struct {
	items map[string]T
	names []string
}

// Builder collects items until Build is called
type Builder[T any] struct {
	items map[string]T
}

// NewBuilder creates an empty Builder
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		items: make(map[string]T),
	}
}

// Register adds an item to the builder
func (b *Builder[T]) Register(name string, item T) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "registry name cannot be empty")
	}

	if _, exists := b.items[name]; exists {
		return errors.Newf(errors.ErrAlreadyExists, "item '%s' is already registered", name)
	}

	b.items[name] = item
	return nil
}

// Build freezes the collected items into a Registry. The builder may keep
// being used afterwards; later registrations do not affect registries
// already built.
func (b *Builder[T]) Build() Registry[T] {
	items := make(map[string]T, len(b.items))
	names := make([]string, 0, len(b.items))
	for name, item := range b.items {
		items[name] = item
		names = append(names, name)
	}
	sort.Strings(names)

	return &registry[T]{items: items, names: names}
}

// Get retrieves an item from the registry
func (r *registry[T]) Get(name string) (T, error) {
	item, exists := r.items[name]
	if !exists {
		var zero T
		return zero, errors.Newf(errors.ErrNotFound, "item '%s' not found in registry", name)
	}

	return item, nil
}

// Has checks if an item is registered
func (r *registry[T]) Has(name string) bool {
	_, exists := r.items[name]
	return exists
}

// List returns all registered names in sorted order
func (r *registry[T]) List() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Count returns the number of registered items
func (r *registry[T]) Count() int {
	return len(r.items)
}

// Without returns a new Registry holding every item of reg except the named
// ones. Names that are not registered are ignored.
func Without[T any](reg Registry[T], names ...string) Registry[T] {
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}

	b := NewBuilder[T]()
	for _, name := range reg.List() {
		if drop[name] {
			continue
		}
		item, _ := reg.Get(name)
		MustRegister(b, name, item)
	}
	return b.Build()
}

// MustRegister registers an item and panics if registration fails
// This is useful for init() functions where registration errors are programming errors
func MustRegister[T any](b *Builder[T], name string, item T) {
	if err := b.Register(name, item); err != nil {
		panic(fmt.Sprintf("failed to register %s: %v", name, err))
	}
}
