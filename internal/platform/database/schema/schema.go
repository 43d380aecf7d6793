// Package schema holds table and column identifiers for the catalog schema
// so repositories never spell SQL identifiers by hand.
package schema

import "strings"

// Qualified prefixes each column with alias, joined for a SELECT list.
func Qualified(alias string, columns []string) string {
	qualified := make([]string, len(columns))
	for i, column := range columns {
		qualified[i] = alias + "." + column
	}
	return strings.Join(qualified, ", ")
}
