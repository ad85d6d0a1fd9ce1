package compose

import (
	"strings"

	"golang.org/x/text/cases"
)

// skipSubstrings are matched case-insensitively against a candidate
// source path to exclude helper and non-geometry sub-scenes. Plain
// substrings like "_fx" are intentionally narrow so they don't reject
// material variants that merely contain the word "light".
var skipSubstrings = []string{
	"/breadcrumbs/", "/endpoints/", "/audio/", "/lighting/", "/ui/",
	"/vfx/", "/fx/",
	"breadcrumb", "endpoint", "_audio", "_sound", "_fx", "_vfx", "_lighting",
}

var caseFold = cases.Fold()

// shouldSkipPath reports whether a candidate stage path matches the
// skip-pattern filter (§4.4.1). Folding rather than strings.ToLower
// keeps the comparison correct for paths containing non-ASCII runes.
func shouldSkipPath(path string) bool {
	folded := caseFold.String(path)
	for _, sub := range skipSubstrings {
		if strings.Contains(folded, sub) {
			return true
		}
	}
	return false
}

