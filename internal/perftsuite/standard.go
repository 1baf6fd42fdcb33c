package perftsuite

import (
	_ "embed"
	"strings"
)

//go:embed standard.epd
var standardEPD string

// Standard returns the built-in reference suite.
func Standard() []Case {
	cases, err := Parse(strings.NewReader(standardEPD))
	if err != nil {
		panic("perftsuite: built-in suite: " + err.Error())
	}
	return cases
}
