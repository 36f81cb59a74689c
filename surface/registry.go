// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/gogpu/damage"
)

// Factory opens a new Backend with the given options.
type Factory func(opts Options) (Backend, error)

// RegistryEntry describes a registered presentation backend.
type RegistryEntry struct {
	Name string

	// Priority orders automatic selection, higher first.
	Priority int

	Factory Factory

	// Available is consulted on every lookup. It is never nil in entries
	// returned by a Registry.
	Available func() bool
}

// Registry maps backend names to factories. The zero value is empty and
// ready to use; it is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]RegistryEntry
}

var defaultRegistry Registry

// Default returns the registry backends add themselves to from their init
// functions.
func Default() *Registry { return &defaultRegistry }

// NewRegistry returns an empty registry, mostly useful in tests.
func NewRegistry() *Registry { return &Registry{} }

// Register adds a backend to the default registry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// List returns the backends of the default registry in selection order.
func List() []string { return defaultRegistry.List() }

// Get looks up a backend of the default registry.
func Get(name string) (RegistryEntry, bool) { return defaultRegistry.Get(name) }

// NewBackend opens the best backend of the default registry.
func NewBackend(opts Options) (Backend, error) { return defaultRegistry.NewBackend(opts) }

// NewBackendByName opens a backend of the default registry by name.
func NewBackendByName(name string, opts Options) (Backend, error) {
	return defaultRegistry.NewBackendByName(name, opts)
}

// Register adds or replaces a backend. A nil available means the backend
// can always be tried.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	if available == nil {
		available = func() bool { return true }
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[string]RegistryEntry)
	}
	r.entries[name] = RegistryEntry{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a backend.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, name)
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (RegistryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[name]
	return e, ok
}

// List returns every registered backend name in selection order: by
// priority, then by name.
func (r *Registry) List() []string {
	return names(r.ordered(false))
}

// Available is List restricted to backends that report themselves
// available.
func (r *Registry) Available() []string {
	return names(r.ordered(true))
}

// NewBackend tries the available backends in selection order and returns
// the first that opens. If none opens, the error joins every failure.
func (r *Registry) NewBackend(opts Options) (Backend, error) {
	candidates := r.ordered(true)
	if len(candidates) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var errs []error
	for _, e := range candidates {
		b, err := e.Factory(opts)
		if err == nil {
			damage.Logger().Info("surface: backend selected", slog.String("name", e.Name))
			return b, nil
		}
		damage.Logger().Warn("surface: backend failed to open",
			slog.String("name", e.Name), slog.String("err", err.Error()))
		errs = append(errs, fmt.Errorf("surface: %s: %w", e.Name, err))
	}
	return nil, errors.Join(errs...)
}

// NewBackendByName opens one backend without falling back to others.
func (r *Registry) NewBackendByName(name string, opts Options) (Backend, error) {
	e, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !e.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}
	return e.Factory(opts)
}

func (r *Registry) ordered(onlyAvailable bool) []RegistryEntry {
	r.mu.RLock()
	entries := make([]RegistryEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	if onlyAvailable {
		entries = slices.DeleteFunc(entries, func(e RegistryEntry) bool { return !e.Available() })
	}
	slices.SortFunc(entries, func(a, b RegistryEntry) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

func names(entries []RegistryEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

// ErrNoBackendAvailable is returned by NewBackend when no registered
// backend is available.
var ErrNoBackendAvailable = errors.New("surface: no backend available")

// BackendNotFoundError reports a name that was never registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered backend that cannot run on
// this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "surface: backend unavailable: " + e.Name
}
