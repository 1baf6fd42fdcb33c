//go:build !strict

package board

// strictChecks enables the board consistency checks. Build with -tags strict.
const strictChecks = false
