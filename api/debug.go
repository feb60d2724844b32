// Package api
// Author: momentics
//
// Live debug and state introspection support.

package api

// Debug exposes runtime introspection for diagnostics.
type Debug interface {
	// DumpState emits a snapshot of internal state.
	DumpState() map[string]any
}
