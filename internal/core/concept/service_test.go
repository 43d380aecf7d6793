package concept_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/catalog/internal/core/concept"
	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/pkg/pointer"
)

func ids(concepts []*concept.Concept) []int64 {
	out := make([]int64, len(concepts))
	for i, c := range concepts {
		out[i] = c.ID
	}
	return out
}

/*
TestListConcepts_Visibility covers the published and archived filters for
both kinds of caller.
*/
func TestListConcepts_Visibility(t *testing.T) {
	tests := []struct {
		name    string
		ctx     context.Context
		params  concept.ListParams
		wantIDs []int64
	}{
		{"anonymous", context.Background(), concept.ListParams{}, []int64{2, 1}},
		{"anonymous_filters_ignored", context.Background(), concept.ListParams{Published: pointer.To(false)}, []int64{2, 1}},
		{"curator_everything", asCurator(context.Background()), concept.ListParams{}, []int64{2, 1, 3, 4}},
		{"curator_unpublished", asCurator(context.Background()), concept.ListParams{Published: pointer.To(false)}, []int64{3}},
		{"curator_archived", asCurator(context.Background()), concept.ListParams{Archived: pointer.To(true)}, []int64{4}},
		{"curator_both", asCurator(context.Background()), concept.ListParams{Published: pointer.To(true), Archived: pointer.To(false)}, []int64{2, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := concept.NewService(newFixture(), nil, slog.New(slog.DiscardHandler))

			concepts, err := service.ListConcepts(tt.ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ids(concepts))
		})
	}
}

func TestListConcepts_Order(t *testing.T) {
	tests := []struct {
		name      string
		params    concept.ListParams
		wantOrder concept.Order
	}{
		{"default", concept.ListParams{}, concept.OrderDefault},
		{"unknown_sort", concept.ListParams{Sort: "modified"}, concept.OrderDefault},
		{"name_defaults_descending", concept.ListParams{Sort: "name"}, concept.OrderNameDesc},
		{"name_desc", concept.ListParams{Sort: "name", Direction: "desc"}, concept.OrderNameDesc},
		{"name_asc", concept.ListParams{Sort: "name", Direction: "asc"}, concept.OrderNameAsc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFixture()
			service := concept.NewService(repo, nil, slog.New(slog.DiscardHandler))

			_, err := service.ListConcepts(context.Background(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOrder, repo.lastOrder)
		})
	}
}

/*
TestListConcepts_Search covers the optional backend, query normalization and
the length limit.
*/
func TestListConcepts_Search(t *testing.T) {
	t.Run("ignored_without_backend", func(t *testing.T) {
		service := concept.NewService(newFixture(), nil, slog.New(slog.DiscardHandler))

		concepts, err := service.ListConcepts(context.Background(), concept.ListParams{Query: "blood"})
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 1}, ids(concepts))
	})

	t.Run("relevance_order_ignores_sort", func(t *testing.T) {
		repo := newFixture()
		searcher := &fakeSearcher{repo: repo}
		service := concept.NewService(repo, searcher, slog.New(slog.DiscardHandler))

		concepts, err := service.ListConcepts(context.Background(), concept.ListParams{Query: "  R  ", Sort: "name", Direction: "asc"})
		require.NoError(t, err)
		assert.Equal(t, "r", searcher.lastQuery)
		assert.Equal(t, []int64{2, 1}, ids(concepts))
	})

	t.Run("search_respects_visibility", func(t *testing.T) {
		repo := newFixture()
		service := concept.NewService(repo, &fakeSearcher{repo: repo}, slog.New(slog.DiscardHandler))

		concepts, err := service.ListConcepts(context.Background(), concept.ListParams{Query: "draft"})
		require.NoError(t, err)
		assert.Empty(t, concepts)

		concepts, err = service.ListConcepts(asCurator(context.Background()), concept.ListParams{Query: "draft"})
		require.NoError(t, err)
		assert.Equal(t, []int64{3}, ids(concepts))
	})

	t.Run("blank_query_lists", func(t *testing.T) {
		repo := newFixture()
		searcher := &fakeSearcher{repo: repo}
		service := concept.NewService(repo, searcher, slog.New(slog.DiscardHandler))

		concepts, err := service.ListConcepts(context.Background(), concept.ListParams{Query: " \t "})
		require.NoError(t, err)
		assert.Empty(t, searcher.lastQuery)
		assert.Equal(t, []int64{2, 1}, ids(concepts))
	})

	t.Run("too_long", func(t *testing.T) {
		repo := newFixture()
		service := concept.NewService(repo, &fakeSearcher{repo: repo}, slog.New(slog.DiscardHandler))

		_, err := service.ListConcepts(context.Background(), concept.ListParams{Query: strings.Repeat("a", 201)})
		require.Error(t, err)
		assert.Equal(t, "VALIDATION_ERROR", apperr.As(err).Code)
	})
}

func TestGetConcept(t *testing.T) {
	repo := newFixture()
	service := concept.NewService(repo, nil, slog.New(slog.DiscardHandler))

	c, err := service.GetConcept(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, c.Fields, 2)
	assert.Equal(t, int64(10), c.Fields[0].FieldID)

	c, err = service.GetConcept(context.Background(), 2)
	require.NoError(t, err)
	assert.NotNil(t, c.Fields)
	assert.Empty(t, c.Fields)

	_, err = service.GetConcept(context.Background(), 3)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	c, err = service.GetConcept(asCurator(context.Background()), 3)
	require.NoError(t, err)
	assert.Equal(t, "Draft", c.Name)
}

// Fields for a whole listing are loaded with a single batch call.
func TestListConcepts_BatchesFieldLoad(t *testing.T) {
	repo := newFixture()
	service := concept.NewService(repo, nil, slog.New(slog.DiscardHandler))

	_, err := service.ListConcepts(asCurator(context.Background()), concept.ListParams{})
	require.NoError(t, err)

	require.Len(t, repo.fieldCalls, 1)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, repo.fieldCalls[0])
}
