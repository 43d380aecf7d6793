package field

import (
	"context"

	"github.com/taibuivan/catalog/internal/platform/constants"
	"github.com/taibuivan/catalog/internal/platform/ctxutil"
)

// Service applies caller visibility to field reads.
type Service struct {
	repo Repository
}

// NewService constructs a new field [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListFields returns the fields visible to the caller, ordered by name.
func (service *Service) ListFields(ctx context.Context) ([]*Field, error) {
	return service.repo.List(ctx, visibleTo(ctx))
}

// GetField returns a single field, or NOT_FOUND when the caller cannot see it.
func (service *Service) GetField(ctx context.Context, id int64) (*Field, error) {
	return service.repo.GetByID(ctx, id, visibleTo(ctx))
}

// visibleTo hides unpublished and archived fields from callers without the
// change permission.
func visibleTo(ctx context.Context) Filter {
	return Filter{PublishedOnly: !ctxutil.Can(ctx, constants.PermChangeField)}
}
