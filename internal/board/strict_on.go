//go:build strict

package board

const strictChecks = true
