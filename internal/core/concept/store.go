package concept

import "context"

// # Repository Interfaces

// Repository reads concepts and their field links from storage.
type Repository interface {
	// List returns every concept matching filter in the requested order.
	List(ctx context.Context, filter Filter, order Order) ([]*Concept, error)

	// GetByID returns a single concept matching filter, or NOT_FOUND.
	GetByID(ctx context.Context, id int64, filter Filter) (*Concept, error)

	// ListFields returns the ordered field links of each requested concept.
	// Concepts without fields may be absent from the map.
	ListFields(ctx context.Context, conceptIDs []int64) (map[int64][]ConceptField, error)
}

// Searcher is an optional free-text backend over concepts.
type Searcher interface {
	// Search returns concepts matching query and filter, most relevant first.
	Search(ctx context.Context, query string, filter Filter) ([]*Concept, error)
}
