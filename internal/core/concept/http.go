/*
Package concept provides the read-only HTTP resource for data concepts.

# Access Control

  - Public: published, non-archived concepts.
  - avocado.change_dataconcept: every concept, the "published" and
    "archived" filters, and a 405 instead of a 403 on unsafe methods.

# Storage

Concepts are read from PostgreSQL. The field links of every concept in a
response are loaded in one batch and may be fronted by Redis, see
[CachedRepository]. Free-text search is optional, see [PostgresSearcher].
*/
package concept

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/catalog/internal/platform/apperr"
	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/middleware"
	requestutil "github.com/taibuivan/catalog/internal/platform/request"
	"github.com/taibuivan/catalog/internal/platform/respond"
	"github.com/taibuivan/catalog/pkg/slice"
)

// Handler implements the HTTP layer for concepts.
type Handler struct {
	service *Service
	baseURL string
}

// NewHandler constructs a concept [Handler]. baseURL may be empty to derive
// link origins from each request.
func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

// Routes returns a [chi.Router] configured with the concept endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.MethodNotAllowed(middleware.MethodNotAllowed)
	router.NotFound(middleware.NotFound)
	router.Use(middleware.RequirePermissionForUnsafe(constants.PermChangeConcept))
	router.Use(chimw.GetHead)

	router.Get("/", handler.listConcepts)
	router.Get("/{id}", handler.getConcept)
	router.Options("/", middleware.Options)
	router.Options("/{id}", middleware.Options)

	return router
}

/*
GET /api/v1/concepts.

Query:
  - sort: "name" orders by name; anything else keeps the curated order
  - direction: "asc" flips the name sort, which is descending by default
  - published, archived: "true" or "false", privileged callers only
  - query: free-text search when a backend is configured

Response:
  - 200: []Payload
  - 400: VALIDATION_ERROR: query longer than 200 characters
*/
func (handler *Handler) listConcepts(writer http.ResponseWriter, request *http.Request) {
	params := ListParams{
		Sort:      requestutil.Query(request, "sort"),
		Direction: requestutil.Query(request, "direction"),
		Published: requestutil.OptionalBool(request, "published"),
		Archived:  requestutil.OptionalBool(request, "archived"),
		Query:     requestutil.Query(request, "query"),
	}

	concepts, err := handler.service.ListConcepts(request.Context(), params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	absolute := handler.absolute(request)
	respond.OK(writer, slice.Map(concepts, func(c *Concept) Payload { return Prepare(c, absolute) }))
}

/*
GET /api/v1/concepts/{id}.

Response:
  - 200: Payload with nested fields
  - 404: NOT_FOUND: unknown id, or hidden from the caller
*/
func (handler *Handler) getConcept(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Concept"))
		return
	}

	c, err := handler.service.GetConcept(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Prepare(c, handler.absolute(request)))
}

func (handler *Handler) absolute(request *http.Request) func(string) string {
	return func(path string) string {
		return requestutil.AbsoluteURL(request, handler.baseURL, path)
	}
}
