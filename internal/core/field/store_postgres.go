package field

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/catalog/internal/platform/database/schema"
	"github.com/taibuivan/catalog/internal/platform/dberr"
	"github.com/taibuivan/catalog/internal/platform/postgres"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository constructs a PostgreSQL backed field store.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Field, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s f WHERE TRUE%s ORDER BY f.%s ASC, f.%s ASC`,
		schema.Qualified("f", schema.CatalogField.Columns()),
		schema.CatalogField.Table,
		visibilityClause("f", filter),
		schema.CatalogField.Name, schema.CatalogField.ID,
	)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Field", "list_fields")
	}
	defer rows.Close()

	fields := make([]*Field, 0)
	for rows.Next() {
		f, err := ScanField(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Field", "scan_field")
		}
		fields = append(fields, f)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Field", "list_fields")
	}
	return fields, nil
}

func (repository *PostgresRepository) GetByID(ctx context.Context, id int64, filter Filter) (*Field, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s f WHERE f.%s = $1%s`,
		schema.Qualified("f", schema.CatalogField.Columns()),
		schema.CatalogField.Table,
		schema.CatalogField.ID,
		visibilityClause("f", filter),
	)

	f, err := ScanField(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "Field", "get_field_by_id")
	}
	return f, nil
}

// ScanField reads one row laid out as [schema.CatalogFieldTable.Columns].
// Extra destinations are scanned after the field columns.
func ScanField(row pgx.Row, extra ...any) (*Field, error) {
	f := &Field{}
	dest := append([]any{
		&f.ID, &f.Name, &f.PluralName, &f.Description, &f.Keywords,
		&f.AppName, &f.ModelName, &f.FieldName, &f.Unit, &f.PluralUnit,
		&f.Enumerable, &f.Searchable, &f.Published, &f.Archived, &f.Modified,
	}, extra...)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return f, nil
}

func visibilityClause(alias string, filter Filter) string {
	if !filter.PublishedOnly {
		return ""
	}
	return fmt.Sprintf(" AND %s.%s AND NOT %s.%s",
		alias, schema.CatalogField.Published, alias, schema.CatalogField.Archived)
}
