package queries

import (
	"context"
	"time"

	"booking-system/internal/infra"
	"booking-system/internal/pkg/errs"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ResourceType string    `json:"resource_type"`
	Capacity     int       `json:"capacity"`
	IsAvailable  bool      `json:"is_available"`
	Location     string    `json:"location"`
	PricePerHour *float64  `json:"price_per_hour,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ResourceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	FindAll(ctx context.Context) ([]*ResourceView, error)
	FindAvailable(ctx context.Context) ([]*ResourceView, error)
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context) ([]*ResourceView, error)
	ListAvailable(ctx context.Context) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	store ResourceReadStore
}

func NewResourceQueries(store ResourceReadStore) ResourceQueries {
	return &resourceQueriesImpl{store: store}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrResourceNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *resourceQueriesImpl) List(ctx context.Context) ([]*ResourceView, error) {
	return q.store.FindAll(ctx)
}

func (q *resourceQueriesImpl) ListAvailable(ctx context.Context) ([]*ResourceView, error) {
	return q.store.FindAvailable(ctx)
}
