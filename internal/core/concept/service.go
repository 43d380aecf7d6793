package concept

import (
	"context"
	"log/slog"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/validate"
)

// Service applies caller visibility, filtering and search to concept reads
// and attaches each concept's field links.
type Service struct {
	repo     Repository
	searcher Searcher
	logger   *slog.Logger
}

// NewService constructs a concept [Service]. A nil searcher disables the
// "query" parameter entirely.
func NewService(repo Repository, searcher Searcher, logger *slog.Logger) *Service {
	return &Service{repo: repo, searcher: searcher, logger: logger}
}

// GetConcept returns a single concept with its fields, or NOT_FOUND when the
// caller cannot see it.
func (service *Service) GetConcept(ctx context.Context, id int64) (*Concept, error) {
	filter := Filter{PublishedOnly: !privileged(ctx)}

	c, err := service.repo.GetByID(ctx, id, filter)
	if err != nil {
		return nil, err
	}

	if err := service.attachFields(ctx, []*Concept{c}); err != nil {
		return nil, err
	}
	return c, nil
}

/*
ListConcepts returns the concepts visible to the caller.

Description: Privileged callers may narrow by the published and archived
flags; for everyone else those parameters are ignored. A non-empty query is
served by the search backend in relevance order and the sort parameters are
ignored for that request.

Returns:
  - []*Concept: Visible concepts with fields attached
  - error: VALIDATION_ERROR for an over-long query, or storage failures
*/
func (service *Service) ListConcepts(ctx context.Context, params ListParams) ([]*Concept, error) {
	filter := Filter{PublishedOnly: true}
	if privileged(ctx) {
		filter = Filter{Published: params.Published, Archived: params.Archived}
	}

	var (
		concepts []*Concept
		err      error
	)

	query := service.searchQuery(params.Query)
	if query != "" {
		validator := &validate.Validator{}
		validator.MaxLen("query", query, constants.MaxSearchQueryLength)
		if err := validator.Err(); err != nil {
			return nil, err
		}

		concepts, err = service.searcher.Search(ctx, NormalizeQuery(query), filter)
	} else {
		concepts, err = service.repo.List(ctx, filter, params.order())
	}
	if err != nil {
		return nil, err
	}

	if err := service.attachFields(ctx, concepts); err != nil {
		return nil, err
	}
	return concepts, nil
}

// searchQuery returns the query to run, or "" when search is unavailable or
// nothing meaningful was asked.
func (service *Service) searchQuery(raw string) string {
	if service.searcher == nil {
		return ""
	}
	if NormalizeQuery(raw) == "" {
		return ""
	}
	return raw
}

func (service *Service) attachFields(ctx context.Context, concepts []*Concept) error {
	if len(concepts) == 0 {
		return nil
	}

	ids := make([]int64, len(concepts))
	for i, c := range concepts {
		ids[i] = c.ID
	}

	links, err := service.repo.ListFields(ctx, ids)
	if err != nil {
		return err
	}

	for _, c := range concepts {
		c.Fields = links[c.ID]
		if c.Fields == nil {
			c.Fields = []ConceptField{}
		}
	}

	service.logger.DebugContext(ctx, "concept_fields_attached", slog.Int("concepts", len(concepts)))
	return nil
}

func privileged(ctx context.Context) bool {
	return ctxutil.Can(ctx, constants.PermChangeConcept)
}
