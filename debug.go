//go:build fxpdebug

package fxp

// debugChecks enables the overflow and shift preconditions. Checked builds
// panic where release builds wrap.
const debugChecks = true
