//go:build !fxpdebug

package fxp

// debugChecks is off by default so the checks compile out of the arithmetic
// path entirely. Build with the fxpdebug tag to enable them.
const debugChecks = false
