// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about channel writes, patch edits and HTTP
// requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The dmx and graph packages stay free of hooks; the controller and the HTTP
// server emit events around the core calls.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetDMXHooks(&myDMXHooks{})
//	    observability.SetPatchHooks(&myPatchHooks{})
//	    // ... run application
//	}
//
// Emitters call the registered hooks:
//
//	observability.DMX().OnChannelSet(universe, index, value)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// DMX Hooks
// =============================================================================

// DMXHooks receives events about channel writes.
type DMXHooks interface {
	// OnChannelSet records a base value write.
	OnChannelSet(universe, index int, value uint32)

	// OnChannelOverride records an override write.
	OnChannelOverride(universe, index int, value uint32)

	// OnChannelRevert records an override being dropped.
	OnChannelRevert(universe, index int)

	// OnUnknownUniverse records a write addressed to an unconfigured universe.
	OnUnknownUniverse(universe int)
}

// =============================================================================
// Patch Hooks
// =============================================================================

// PatchHooks receives events about node graph edits.
type PatchHooks interface {
	// OnNodeAdded records a node placed into slot index.
	OnNodeAdded(index int)

	// OnNodeDeleted records a node removal and the number of edges it took with it.
	OnNodeDeleted(index, edges int)

	// OnEdgeAdded records a new connection.
	OnEdgeAdded(start, end int)

	// OnEdgeRejected records a connection refused by the graph.
	OnEdgeRejected(start, end int, err error)

	// OnUpdate records one evaluation pass over every node.
	OnUpdate(nodes int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response written for a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopDMXHooks is a no-op implementation of DMXHooks.
type NoopDMXHooks struct{}

func (NoopDMXHooks) OnChannelSet(int, int, uint32)      {}
func (NoopDMXHooks) OnChannelOverride(int, int, uint32) {}
func (NoopDMXHooks) OnChannelRevert(int, int)           {}
func (NoopDMXHooks) OnUnknownUniverse(int)              {}

// NoopPatchHooks is a no-op implementation of PatchHooks.
type NoopPatchHooks struct{}

func (NoopPatchHooks) OnNodeAdded(int)                {}
func (NoopPatchHooks) OnNodeDeleted(int, int)         {}
func (NoopPatchHooks) OnEdgeAdded(int, int)           {}
func (NoopPatchHooks) OnEdgeRejected(int, int, error) {}
func (NoopPatchHooks) OnUpdate(int, time.Duration)    {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	dmxHooks   DMXHooks   = NoopDMXHooks{}
	patchHooks PatchHooks = NoopPatchHooks{}
	httpHooks  HTTPHooks  = NoopHTTPHooks{}
	hooksMu    sync.RWMutex
)

// SetDMXHooks registers custom DMX hooks.
// This should be called once at application startup.
func SetDMXHooks(h DMXHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		dmxHooks = h
	}
}

// SetPatchHooks registers custom patch hooks.
// This should be called once at application startup.
func SetPatchHooks(h PatchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		patchHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// DMX returns the registered DMX hooks.
func DMX() DMXHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return dmxHooks
}

// Patch returns the registered patch hooks.
func Patch() PatchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return patchHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	dmxHooks = NoopDMXHooks{}
	patchHooks = NoopPatchHooks{}
	httpHooks = NoopHTTPHooks{}
}
