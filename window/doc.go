// Package window
// Author: momentics <momentics@gmail.com>
//
// Index normalization and window composition for seqview.
// Resolves slice specifications against sequence lengths into lazy
// (start, stop, step) Range triples or explicit IndexList windows, and
// composes windows with further slices without touching the target.
// See resolve.go for the normalization rules.
package window
