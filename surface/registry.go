// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"slices"
	"sync"

	"github.com/gogpu/pixstring/pixel"
)

// Options carries the parameters a backend needs to create a surface.
type Options struct {
	Width  int
	Height int

	// Background is the initial color of every pixel. Backends that show
	// an existing display ignore it.
	Background pixel.BGRA
}

// Factory creates a new Surface with the given options.
type Factory func(opts Options) (Surface, error)

// Backend describes a registered surface backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred). Display
	// backends use 100, the in-memory backend uses 10.
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

var globalRegistry = NewRegistry()

// Registry holds surface backends by name.
//
// Example registration:
//
//	func init() {
//	    surface.Register("x11", 100, newX11Surface, x11Available)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// NewRegistry creates an empty registry. Most code uses the package-level
// functions, which share one global registry.
func NewRegistry() *Registry {
	return &Registry{backends: make(map[string]*Backend)}
}

// Register adds a backend to the global registry.
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) { globalRegistry.Unregister(name) }

// List returns all registered backend names, highest priority first.
func List() []string { return globalRegistry.List() }

// NewSurface creates a width×height surface with the best available
// backend.
func NewSurface(width, height int) (Surface, error) {
	return globalRegistry.NewSurface(Options{Width: width, Height: height})
}

// NewSurfaceByName creates a width×height surface with a named backend.
func NewSurfaceByName(name string, width, height int) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, Options{Width: width, Height: height})
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.backends[name] = &Backend{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// List returns all backend names, highest priority first.
func (r *Registry) List() []string {
	return r.names(false)
}

// Available returns the names of available backends, highest priority
// first.
func (r *Registry) Available() []string {
	return r.names(true)
}

// Get returns a copy of the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	if !ok {
		return Backend{}, false
	}
	return *b, true
}

// NewSurface tries the available backends in priority order and returns
// the first surface created.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	names := r.Available()
	if len(names) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, name := range names {
		s, err := r.NewSurfaceByName(name, opts)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

// NewSurfaceByName creates a surface with the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return b.Factory(opts)
}

// names returns backend names sorted by priority, then name.
func (r *Registry) names(onlyAvailable bool) []string {
	r.mu.RLock()
	list := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		list = append(list, b)
	}
	r.mu.RUnlock()

	slices.SortFunc(list, func(a, b *Backend) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})

	var names []string
	for _, b := range list {
		if onlyAvailable && !b.Available() {
			continue
		}
		names = append(names, b.Name)
	}
	return names
}

// ErrNoBackendAvailable is returned when no backend is registered or
// available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError indicates a backend exists but is not available.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}

func init() {
	Register("memory", 10, func(opts Options) (Surface, error) {
		if opts.Width < 0 || opts.Height < 0 {
			return nil, ErrInvalidRegion
		}
		s := NewMemorySurface(opts.Width, opts.Height)
		if opts.Background != pixel.Invisible {
			s.Fill(opts.Background)
		}
		return s, nil
	}, nil)
}
