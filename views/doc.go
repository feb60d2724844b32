// Package views
// Author: momentics <momentics@gmail.com>
//
// Read-only, zero-copy views over externally owned sequences.
// A View mirrors the whole target live; a WindowedView pins a resolved
// window of target indices and lets the target change beneath it.
// No data is ever duplicated; element access is index arithmetic
// through the window package.
package views
