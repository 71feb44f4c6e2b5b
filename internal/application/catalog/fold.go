package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldKey normalizes an identifying value (email, category name) for
// duplicate checks: trimmed and case-folded, so "Tools" and "tools"
// collide. The Caser is built per call; a cases.Caser may be stateful
// and must not be shared between goroutines.
func foldKey(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
