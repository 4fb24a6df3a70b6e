// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about store operations and glyph generation.
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by libraries, which avoids import
// cycles and keeps the core free of observability frameworks.
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
package observability

import (
	"context"
	"sync"
	"time"
)

// StoreHooks receives events from entry store operations.
type StoreHooks interface {
	// OnLoad records a completed load, with the number of surviving entries.
	OnLoad(ctx context.Context, backend string, entries int, duration time.Duration, err error)

	// OnSave records a full-store write.
	OnSave(ctx context.Context, backend string, entries int, duration time.Duration, err error)

	// OnSubmit records a submission attempt for a day.
	OnSubmit(ctx context.Context, backend, dateKey string, err error)
}

// GlyphHooks receives events from glyph generation.
type GlyphHooks interface {
	// OnGenerate records a generated glyph and how many cells it painted.
	OnGenerate(ctx context.Context, dateKey string, painted int)
}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnLoad(context.Context, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnSave(context.Context, string, int, time.Duration, error) {}
func (NoopStoreHooks) OnSubmit(context.Context, string, string, error)           {}

// NoopGlyphHooks is a no-op implementation of GlyphHooks.
type NoopGlyphHooks struct{}

func (NoopGlyphHooks) OnGenerate(context.Context, string, int) {}

var (
	storeHooks StoreHooks = NoopStoreHooks{}
	glyphHooks GlyphHooks = NoopGlyphHooks{}
	hooksMu    sync.RWMutex
)

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// SetGlyphHooks registers custom glyph hooks.
// This should be called once at application startup.
func SetGlyphHooks(h GlyphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		glyphHooks = h
	}
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Glyph returns the registered glyph hooks.
func Glyph() GlyphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return glyphHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	storeHooks = NoopStoreHooks{}
	glyphHooks = NoopGlyphHooks{}
}
