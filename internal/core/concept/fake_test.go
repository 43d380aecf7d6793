package concept_test

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/taibuivan/catalog/internal/core/concept"
	"github.com/taibuivan/catalog/internal/core/field"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
	"github.com/taibuivan/catalog/internal/platform/sec"
	"github.com/taibuivan/catalog/pkg/pointer"
)

// memoryRepository is an in-memory [concept.Repository] honouring filters
// and orders the way the PostgreSQL store does.
type memoryRepository struct {
	concepts   []*concept.Concept
	links      map[int64][]concept.ConceptField
	fieldCalls [][]int64
	lastOrder  concept.Order
}

func (m *memoryRepository) List(_ context.Context, filter concept.Filter, order concept.Order) ([]*concept.Concept, error) {
	m.lastOrder = order

	out := make([]*concept.Concept, 0)
	for _, c := range m.concepts {
		if matches(c, filter) {
			copied := *c
			out = append(out, &copied)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		switch order {
		case concept.OrderNameAsc:
			return out[i].Name < out[j].Name
		case concept.OrderNameDesc:
			return out[i].Name > out[j].Name
		default:
			return pointer.Fallback(out[i].Order, 1e9) < pointer.Fallback(out[j].Order, 1e9)
		}
	})
	return out, nil
}

func (m *memoryRepository) GetByID(_ context.Context, id int64, filter concept.Filter) (*concept.Concept, error) {
	for _, c := range m.concepts {
		if c.ID == id && matches(c, filter) {
			copied := *c
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("Concept")
}

func (m *memoryRepository) ListFields(_ context.Context, conceptIDs []int64) (map[int64][]concept.ConceptField, error) {
	m.fieldCalls = append(m.fieldCalls, conceptIDs)

	out := make(map[int64][]concept.ConceptField)
	for _, id := range conceptIDs {
		if links, ok := m.links[id]; ok {
			out[id] = links
		}
	}
	return out, nil
}

func matches(c *concept.Concept, filter concept.Filter) bool {
	if filter.PublishedOnly {
		return c.Published && !c.Archived
	}
	if filter.Published != nil && c.Published != *filter.Published {
		return false
	}
	if filter.Archived != nil && c.Archived != *filter.Archived {
		return false
	}
	return true
}

// fakeSearcher matches concepts whose name contains the query, in reverse
// id order to tell relevance order from the default order.
type fakeSearcher struct {
	repo      *memoryRepository
	lastQuery string
}

func (f *fakeSearcher) Search(ctx context.Context, query string, filter concept.Filter) ([]*concept.Concept, error) {
	f.lastQuery = query

	all, _ := f.repo.List(ctx, filter, concept.OrderDefault)
	out := make([]*concept.Concept, 0)
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), query) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

var modified = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

/*
newFixture builds four concepts:

  - 1 "Blood Pressure": published, two fields
  - 2 "Allergy": published, order 1, no fields
  - 3 "Draft": unpublished
  - 4 "Retired": published and archived
*/
func newFixture() *memoryRepository {
	systolic := &field.Field{ID: 10, Name: "Systolic", Published: true, Modified: modified}
	diastolic := &field.Field{ID: 11, Name: "Diastolic", PluralName: "Diastolic readings", Published: true, Modified: modified}

	return &memoryRepository{
		concepts: []*concept.Concept{
			{ID: 1, Name: "Blood Pressure", Order: pointer.To(2.0), Published: true, Modified: modified},
			{ID: 2, Name: "Allergy", Order: pointer.To(1.0), Published: true, Modified: modified},
			{ID: 3, Name: "Draft", Published: false, Modified: modified},
			{ID: 4, Name: "Retired", Published: true, Archived: true, Modified: modified},
		},
		links: map[int64][]concept.ConceptField{
			1: {
				{ID: 100, ConceptID: 1, FieldID: 10, Name: pointer.To("SBP"), Field: systolic},
				{ID: 101, ConceptID: 1, FieldID: 11, Field: diastolic},
			},
		},
	}
}

var curator = &sec.AuthClaims{UserID: "u-1", Role: string(sec.RoleCurator), Permissions: []string{constants.PermChangeConcept}}

func asCurator(ctx context.Context) context.Context {
	return ctxutil.WithAuthUser(ctx, curator)
}

func withClaims(request *http.Request, claims *sec.AuthClaims) *http.Request {
	if claims == nil {
		return request
	}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}
