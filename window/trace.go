// File: window/trace.go
// Author: momentics <momentics@gmail.com>
//
// Trace hook for normalization events (inward start adjustments).
// Silent unless installed; can be pointed at any structured logger.

package window

var tracef = func(msg string, args ...any) {}

// SetTraceFunc installs fn as the normalization trace hook. A nil fn
// restores the silent default. Not safe for concurrent use with
// resolution; install hooks before sharing windows.
func SetTraceFunc(fn func(msg string, args ...any)) {
	if fn == nil {
		fn = func(string, ...any) {}
	}
	tracef = fn
}
