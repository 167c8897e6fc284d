// Package observability provides hooks for metrics and tracing.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about block generation, insertion, render passes, and
// served HTTP requests.
//
// The core packages (layout, width, editor) stay free of side effects; hooks
// are called by the entry points that drive them (the CLI and the HTTP API).
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetBlockHooks(&myBlockHooks{})
//	    // ... run application
//	}
//
// Entry points call hooks to emit events:
//
//	block, err := layout.GenerateRequest(req)
//	observability.Blocks().OnGenerate(ctx, "preset", req.Columns, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// Sources reported by [BlockHooks.OnGenerate].
const (
	SourcePreset  = "preset"
	SourceCustom  = "custom"
	SourceColumns = "columns"
	SourcePicker  = "picker"
)

// =============================================================================
// Block Hooks
// =============================================================================

// BlockHooks receives events about generated and inserted blocks.
type BlockHooks interface {
	// OnGenerate records a generation request. source says how the shape was
	// chosen (preset, custom, columns, picker).
	OnGenerate(ctx context.Context, source string, columns int, err error)

	// OnInsert records an insertion into a document at line (zero-based).
	OnInsert(ctx context.Context, columns, line int, err error)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from width render passes.
type RenderHooks interface {
	// OnRenderPass records a pass over a document: the number of column
	// elements seen and how many received a width.
	OnRenderPass(ctx context.Context, columns, styled int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP API.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records the response to a request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopBlockHooks is a no-op implementation of BlockHooks.
type NoopBlockHooks struct{}

func (NoopBlockHooks) OnGenerate(context.Context, string, int, error) {}
func (NoopBlockHooks) OnInsert(context.Context, int, int, error)      {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderPass(context.Context, int, int, time.Duration) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	blockHooks  BlockHooks  = NoopBlockHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetBlockHooks registers custom block hooks. A nil h is ignored.
func SetBlockHooks(h BlockHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		blockHooks = h
	}
}

// SetRenderHooks registers custom render hooks. A nil h is ignored.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Blocks returns the registered block hooks.
func Blocks() BlockHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return blockHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	blockHooks = NoopBlockHooks{}
	renderHooks = NoopRenderHooks{}
	httpHooks = NoopHTTPHooks{}
}
