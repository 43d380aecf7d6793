package field

import "context"

// Repository reads fields from storage.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]*Field, error)
	GetByID(ctx context.Context, id int64, filter Filter) (*Field, error)
}
