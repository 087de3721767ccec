// Package observability provides hooks for logging and metrics.
//
// Library packages never log directly. They emit events through the hooks
// registered here, and the application decides what to do with them. The
// defaults are no-ops, so instrumentation costs nothing until a hook is set.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetWidgetHooks(&myWidgetHooks{})
//	    observability.SetRenderHooks(&myRenderHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Widget().OnThumbnailGenerated(id, initials, size, duration)
package observability

import (
	"context"
	"image"
	"sync"
	"time"
)

// =============================================================================
// Widget Hooks
// =============================================================================

// WidgetHooks receives events from profile widgets.
type WidgetHooks interface {
	// OnSourceChanged records a switch between a display name and a photo.
	OnSourceChanged(widgetID, kind string)

	// OnThumbnailGenerated records a regenerated initials bitmap.
	OnThumbnailGenerated(widgetID, initials string, size image.Point, duration time.Duration)

	// OnOverlayAdded records a badge or channel being attached.
	OnOverlayAdded(widgetID, kind string)

	// OnOverlayRemoved records a badge or channel being detached.
	OnOverlayRemoved(widgetID, kind string)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from output rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopWidgetHooks is a no-op implementation of WidgetHooks.
type NoopWidgetHooks struct{}

func (NoopWidgetHooks) OnSourceChanged(string, string)                                  {}
func (NoopWidgetHooks) OnThumbnailGenerated(string, string, image.Point, time.Duration) {}
func (NoopWidgetHooks) OnOverlayAdded(string, string)                                   {}
func (NoopWidgetHooks) OnOverlayRemoved(string, string)                                 {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	widgetHooks WidgetHooks = NoopWidgetHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetWidgetHooks registers custom widget hooks.
// This should be called once at application startup before any widget is built.
func SetWidgetHooks(h WidgetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		widgetHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Widget returns the registered widget hooks.
func Widget() WidgetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return widgetHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	widgetHooks = NoopWidgetHooks{}
	renderHooks = NoopRenderHooks{}
}
