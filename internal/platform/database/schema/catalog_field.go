package schema

// CatalogFieldTable represents the 'catalog.field' table
type CatalogFieldTable struct {
	Table       string
	ID          string
	Name        string
	PluralName  string
	Description string
	Keywords    string
	AppName     string
	ModelName   string
	FieldName   string
	Unit        string
	PluralUnit  string
	Enumerable  string
	Searchable  string
	Published   string
	Archived    string
	Modified    string
}

// CatalogField is the schema definition for catalog.field
var CatalogField = CatalogFieldTable{
	Table:       "catalog.field",
	ID:          "id",
	Name:        "name",
	PluralName:  "plural_name",
	Description: "description",
	Keywords:    "keywords",
	AppName:     "app_name",
	ModelName:   "model_name",
	FieldName:   "field_name",
	Unit:        "unit",
	PluralUnit:  "plural_unit",
	Enumerable:  "enumerable",
	Searchable:  "searchable",
	Published:   "published",
	Archived:    "archived",
	Modified:    "modified",
}

// Columns lists the selectable columns in scan order.
func (t CatalogFieldTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.PluralName, t.Description, t.Keywords,
		t.AppName, t.ModelName, t.FieldName, t.Unit, t.PluralUnit,
		t.Enumerable, t.Searchable, t.Published, t.Archived, t.Modified,
	}
}
