package concept

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/postgres"
)

// PostgresSearcher implements [Searcher] over the concept search vector.
type PostgresSearcher struct {
	db postgres.Querier
}

// NewPostgresSearcher constructs the full-text search backend.
func NewPostgresSearcher(db postgres.Querier) *PostgresSearcher {
	return &PostgresSearcher{db: db}
}

// Search ranks matches with ts_rank. Equal ranks fall back to id order so
// results stay stable across requests.
func (searcher *PostgresSearcher) Search(ctx context.Context, query string, filter Filter) ([]*Concept, error) {
	table := schema.CatalogConcept

	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`
		SELECT %s, ts_rank(c.%s, websearch_to_tsquery('simple', $1)) AS rank
		FROM %s c
		WHERE c.%s @@ websearch_to_tsquery('simple', $1)`,
		schema.Qualified("c", table.Columns()),
		table.SearchVector,
		table.Table,
		table.SearchVector,
	))

	args := filterClause(&queryBuilder, filter, []any{query})
	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY rank DESC, c.%s ASC", table.ID))

	rows, err := searcher.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Concept", "search_concepts")
	}

	var rank float32
	return collectConcepts(rows, &rank)
}
