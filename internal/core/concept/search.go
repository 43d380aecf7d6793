package concept

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeQuery prepares free text for websearch_to_tsquery: compatibility
// composed, case folded, and with whitespace runs collapsed to one space.
//
// The concept search vector is built with the 'simple' configuration, which
// only lower-cases, so folded full-width or decomposed input still matches
// the stored lexemes.
func NormalizeQuery(query string) string {
	t := transform.Chain(norm.NFKC, cases.Fold())
	folded, _, err := transform.String(t, query)
	if err != nil {
		folded = strings.ToLower(query)
	}
	return strings.Join(strings.Fields(folded), " ")
}
