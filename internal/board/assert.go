package board

import "fmt"

// assert panics with a formatted message when cond is false.
// Callers guard it with strictChecks so release builds skip the evaluation.
func assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("board: "+format, args...))
	}
}
