package readstore

import (
	"context"
	"errors"

	"booking-system/internal/infra"
	"booking-system/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceReadStore struct {
	pool *pgxpool.Pool
}

func NewResourceReadStore(pool *pgxpool.Pool) *ResourceReadStore {
	return &ResourceReadStore{pool: pool}
}

var _ queries.ResourceReadStore = (*ResourceReadStore)(nil)

func (s *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	query, args, err := s.selectQuery().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build resource view query", err)
	}

	view, err := scanResource(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan resource view", err)
	}
	return view, nil
}

func (s *ResourceReadStore) FindAll(ctx context.Context) ([]*queries.ResourceView, error) {
	return s.queryList(ctx, s.selectQuery().OrderBy("name"))
}

func (s *ResourceReadStore) FindAvailable(ctx context.Context) ([]*queries.ResourceView, error) {
	return s.queryList(ctx, s.selectQuery().
		Where(squirrel.Eq{"is_available": true}).
		OrderBy("name"))
}

func (s *ResourceReadStore) selectQuery() squirrel.SelectBuilder {
	return psql.Select(
		"id", "name", "description", "resource_type", "capacity",
		"is_available", "location", "price_per_hour_cents", "created_at", "updated_at",
	).From("resources")
}

func (s *ResourceReadStore) queryList(ctx context.Context, q squirrel.SelectBuilder) ([]*queries.ResourceView, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build resource list query", err)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query resource list", err)
	}
	defer rows.Close()

	views := []*queries.ResourceView{}
	for rows.Next() {
		view, err := scanResource(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource view", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate resource list", err)
	}
	return views, nil
}

func scanResource(row pgx.Row) (*queries.ResourceView, error) {
	var (
		view       queries.ResourceView
		priceCents *int64
	)
	if err := row.Scan(
		&view.ID, &view.Name, &view.Description, &view.ResourceType, &view.Capacity,
		&view.IsAvailable, &view.Location, &priceCents, &view.CreatedAt, &view.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if priceCents != nil {
		price := float64(*priceCents) / 100.0
		view.PricePerHour = &price
	}
	return &view, nil
}
