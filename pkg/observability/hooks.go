// Package observability provides hooks for instrumenting catalog loading and
// chord lookups.
//
// The core packages stay free of any metrics or tracing backend. They call
// the registered hooks, which default to no-ops; the CLI registers hooks that
// write debug logs.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCatalogHooks(&myCatalogHooks{})
//	    observability.SetLookupHooks(&myLookupHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Lookup().OnLookup(term, found)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Catalog Hooks
// =============================================================================

// CatalogHooks receives events from definitions loading.
type CatalogHooks interface {
	// OnCatalogLoad records a loaded catalog. sources lists the definitions
	// sources in load order.
	OnCatalogLoad(sources []string, chords, dropped int, duration time.Duration)

	// OnLineDropped records a malformed definition line.
	OnLineDropped(source string, line int, err error)
}

// =============================================================================
// Lookup Hooks
// =============================================================================

// LookupHooks receives events from batch lookups.
type LookupHooks interface {
	// OnLookup records one resolved or unresolved query term.
	OnLookup(term string, found bool)

	// OnBatch records a completed batch. window is empty when nothing was
	// rendered.
	OnBatch(terms, found int, window string, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopCatalogHooks is a no-op implementation of CatalogHooks.
type NoopCatalogHooks struct{}

func (NoopCatalogHooks) OnCatalogLoad([]string, int, int, time.Duration) {}
func (NoopCatalogHooks) OnLineDropped(string, int, error)                {}

// NoopLookupHooks is a no-op implementation of LookupHooks.
type NoopLookupHooks struct{}

func (NoopLookupHooks) OnLookup(string, bool)                   {}
func (NoopLookupHooks) OnBatch(int, int, string, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	catalogHooks CatalogHooks = NoopCatalogHooks{}
	lookupHooks  LookupHooks  = NoopLookupHooks{}
	hooksMu      sync.RWMutex
)

// SetCatalogHooks registers custom catalog hooks.
// This should be called once at application startup before loading definitions.
func SetCatalogHooks(h CatalogHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		catalogHooks = h
	}
}

// SetLookupHooks registers custom lookup hooks.
// This should be called once at application startup before any lookups.
func SetLookupHooks(h LookupHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		lookupHooks = h
	}
}

// Catalog returns the registered catalog hooks.
func Catalog() CatalogHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return catalogHooks
}

// Lookup returns the registered lookup hooks.
func Lookup() LookupHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return lookupHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	catalogHooks = NoopCatalogHooks{}
	lookupHooks = NoopLookupHooks{}
}
