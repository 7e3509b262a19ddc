// Copyright 2026 The easel Authors
// SPDX-License-Identifier: MIT

package driver

import (
	"sort"
	"sync"
)

// Factory creates a new backend instance.
type Factory func() Backend

type registryEntry struct {
	name      string
	priority  int
	factory   Factory
	available func() bool
}

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]*registryEntry)
)

// Register registers a backend factory under the given name.
// This is typically called from init() functions in backend packages:
//
//	func init() {
//	    driver.Register("headless", 10, func() driver.Backend { return New() }, nil)
//	}
//
// Priority determines selection order in Default (higher wins). Standard
// priorities: 100 for native windowing backends, 10 for in-memory ones.
// If available is nil the backend is assumed always available.
// Registering an existing name replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = &registryEntry{
		name:      name,
		priority:  priority,
		factory:   factory,
		available: available,
	}
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns the names of registered backends whose availability
// probe passes, sorted by descending priority.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	entries := make([]*registryEntry, 0, len(backends))
	for _, e := range backends {
		if e.available != nil && !e.available() {
			continue
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// Get returns a new instance of the named backend, or nil if it is not
// registered or not available.
func Get(name string) Backend {
	registryMu.RLock()
	e, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil
	}
	if e.available != nil && !e.available() {
		return nil
	}
	return e.factory()
}

// Default returns the highest-priority available backend, or nil if none
// is registered.
func Default() Backend {
	for _, name := range Available() {
		if b := Get(name); b != nil {
			return b
		}
	}
	return nil
}
