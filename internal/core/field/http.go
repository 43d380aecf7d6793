/*
Package field provides the read-only HTTP resource for data fields.

# Access Control

  - Public: published, non-archived fields.
  - avocado.change_datafield: every field; unsafe methods reach the router
    (and get 405) instead of being refused with 403.

The field serialization in [Prepare] is reused by the concept resource for
its nested field lists.
*/
package field

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

// Handler implements the HTTP layer for fields.
type Handler struct {
	service *Service
	baseURL string
}

// NewHandler constructs a field [Handler]. baseURL may be empty to derive
// link origins from each request.
func NewHandler(service *Service, baseURL string) *Handler {
	return &Handler{service: service, baseURL: baseURL}
}

// Routes returns a [chi.Router] configured with the field endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.MethodNotAllowed(middleware.MethodNotAllowed)
	router.NotFound(middleware.NotFound)
	router.Use(middleware.RequirePermissionForUnsafe(constants.PermChangeField))
	router.Use(chimw.GetHead)

	router.Get("/", handler.listFields)
	router.Get("/{id}", handler.getField)
	router.Options("/", middleware.Options)
	router.Options("/{id}", middleware.Options)

	return router
}

/*
GET /api/v1/fields.

Response:
  - 200: []Payload ordered by name
*/
func (handler *Handler) listFields(writer http.ResponseWriter, request *http.Request) {
	fields, err := handler.service.ListFields(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	absolute := handler.absolute(request)
	respond.OK(writer, slice.Map(fields, func(f *Field) Payload { return Prepare(f, absolute) }))
}

/*
GET /api/v1/fields/{id}.

Response:
  - 200: Payload
  - 404: NOT_FOUND: unknown id, or hidden from the caller
*/
func (handler *Handler) getField(writer http.ResponseWriter, request *http.Request) {
	id, ok := requestutil.ID(request, "id")
	if !ok {
		respond.Error(writer, request, apperr.NotFound("Field"))
		return
	}

	f, err := handler.service.GetField(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, Prepare(f, handler.absolute(request)))
}

func (handler *Handler) absolute(request *http.Request) func(string) string {
	return func(path string) string {
		return requestutil.AbsoluteURL(request, handler.baseURL, path)
	}
}
