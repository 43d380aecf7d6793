package schema

// CatalogConceptFieldTable represents the 'catalog.concept_field' table
type CatalogConceptFieldTable struct {
	Table      string
	ID         string
	ConceptID  string
	FieldID    string
	Name       string
	PluralName string
	Order      string
}

// CatalogConceptField is the schema definition for catalog.concept_field
var CatalogConceptField = CatalogConceptFieldTable{
	Table:      "catalog.concept_field",
	ID:         "id",
	ConceptID:  "concept_id",
	FieldID:    "field_id",
	Name:       "name",
	PluralName: "plural_name",
	Order:      "sort_order",
}

// Columns lists the selectable columns in scan order.
func (t CatalogConceptFieldTable) Columns() []string {
	return []string{t.ID, t.ConceptID, t.FieldID, t.Name, t.PluralName, t.Order}
}
