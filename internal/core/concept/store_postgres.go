package concept

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/postgres"
)

// # PostgreSQL Repositories

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed concept store.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter, order Order) ([]*Concept, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s c WHERE TRUE`,
		schema.Qualified("c", schema.CatalogConcept.Columns()),
		schema.CatalogConcept.Table,
	))

	args := filterClause(&queryBuilder, filter, nil)
	queryBuilder.WriteString(orderClause(order))

	rows, err := repository.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "Concept", "list_concepts")
	}
	return collectConcepts(rows)
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int64, filter Filter) (*Concept, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1`,
		schema.Qualified("c", schema.CatalogConcept.Columns()),
		schema.CatalogConcept.Table,
		schema.CatalogConcept.ID,
	))

	args := filterClause(&queryBuilder, filter, []any{id})

	c, err := scanConcept(repository.db.QueryRow(ctx, queryBuilder.String(), args...))
	if err != nil {
		return nil, dberr.Wrap(err, "Concept", "get_concept_by_id")
	}
	return c, nil
}

// ListFields joins the link table with the field table so one query serves
// every concept in the page.
func (repository *PostgresRepository) ListFields(ctx context.Context, conceptIDs []int64) (map[int64][]ConceptField, error) {
	links := make(map[int64][]ConceptField, len(conceptIDs))
	if len(conceptIDs) == 0 {
		return links, nil
	}

	cf := schema.CatalogConceptField
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s cf
		JOIN %s f ON f.%s = cf.%s
		WHERE cf.%s = ANY($1)
		ORDER BY cf.%s, cf.%s ASC NULLS LAST, cf.%s ASC`,
		schema.Qualified("f", schema.CatalogField.Columns()),
		schema.Qualified("cf", cf.Columns()),
		cf.Table,
		schema.CatalogField.Table, schema.CatalogField.ID, cf.FieldID,
		cf.ConceptID,
		cf.ConceptID, cf.Order, cf.ID,
	)

	rows, err := repository.db.Query(ctx, query, conceptIDs)
	if err != nil {
		return nil, dberr.Wrap(err, "ConceptField", "list_concept_fields")
	}
	defer rows.Close()

	for rows.Next() {
		var link ConceptField
		f, err := field.ScanField(rows,
			&link.ID, &link.ConceptID, &link.FieldID, &link.Name, &link.PluralName, &link.Order,
		)
		if err != nil {
			return nil, dberr.Wrap(err, "ConceptField", "scan_concept_field")
		}
		link.Field = f
		links[link.ConceptID] = append(links[link.ConceptID], link)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "ConceptField", "list_concept_fields")
	}
	return links, nil
}

// # Query Helpers

// filterClause appends the visibility and flag predicates for filter and
// returns args extended with their bind values.
func filterClause(queryBuilder *strings.Builder, filter Filter, args []any) []any {
	table := schema.CatalogConcept

	if filter.PublishedOnly {
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s AND NOT c.%s", table.Published, table.Archived))
		return args
	}

	if filter.Published != nil {
		args = append(args, *filter.Published)
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", table.Published, len(args)))
	}
	if filter.Archived != nil {
		args = append(args, *filter.Archived)
		queryBuilder.WriteString(fmt.Sprintf(" AND c.%s = $%d", table.Archived, len(args)))
	}
	return args
}

func orderClause(order Order) string {
	table := schema.CatalogConcept
	switch order {
	case OrderNameAsc:
		return fmt.Sprintf(" ORDER BY c.%s ASC, c.%s ASC", table.Name, table.ID)
	case OrderNameDesc:
		return fmt.Sprintf(" ORDER BY c.%s DESC, c.%s ASC", table.Name, table.ID)
	default:
		return fmt.Sprintf(" ORDER BY c.%s ASC NULLS LAST, c.%s ASC, c.%s ASC", table.Order, table.Name, table.ID)
	}
}

func collectConcepts(rows pgx.Rows, extra ...any) ([]*Concept, error) {
	defer rows.Close()

	concepts := make([]*Concept, 0)
	for rows.Next() {
		c, err := scanConcept(rows, extra...)
		if err != nil {
			return nil, dberr.Wrap(err, "Concept", "scan_concept")
		}
		concepts = append(concepts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Concept", "list_concepts")
	}
	return concepts, nil
}

// scanConcept reads one row laid out as [schema.CatalogConceptTable.Columns].
func scanConcept(row pgx.Row, extra ...any) (*Concept, error) {
	c := &Concept{}
	dest := append([]any{
		&c.ID, &c.Name, &c.PluralName, &c.Description, &c.Keywords,
		&c.CategoryID, &c.Order, &c.FormatterName, &c.QueryView, &c.Sortable,
		&c.Published, &c.Archived, &c.Modified,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return c, nil
}
