package schema

// CatalogConceptTable represents the 'catalog.concept' table
type CatalogConceptTable struct {
	Table         string
	ID            string
	Name          string
	PluralName    string
	Description   string
	Keywords      string
	CategoryID    string
	Order         string
	FormatterName string
	QueryView     string
	Sortable      string
	Published     string
	Archived      string
	Modified      string
	SearchVector  string
}

// CatalogConcept is the schema definition for catalog.concept
var CatalogConcept = CatalogConceptTable{
	Table:         "catalog.concept",
	ID:            "id",
	Name:          "name",
	PluralName:    "plural_name",
	Description:   "description",
	Keywords:      "keywords",
	CategoryID:    "category_id",
	Order:         "sort_order",
	FormatterName: "formatter_name",
	QueryView:     "queryview",
	Sortable:      "sortable",
	Published:     "published",
	Archived:      "archived",
	Modified:      "modified",
	SearchVector:  "search_vector",
}

// Columns lists the selectable columns in scan order. The search vector is
// internal and never selected.
func (t CatalogConceptTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.PluralName, t.Description, t.Keywords,
		t.CategoryID, t.Order, t.FormatterName, t.QueryView, t.Sortable,
		t.Published, t.Archived, t.Modified,
	}
}
