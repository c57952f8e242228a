package repository

import (
	"context"
	"errors"
	"time"

	"booking-system/internal/domain/resource"
	"booking-system/internal/infra"
	"booking-system/internal/usecase/commands"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ResourceRepository struct {
	pool *pgxpool.Pool
}

func NewResourceRepository(pool *pgxpool.Pool) *ResourceRepository {
	return &ResourceRepository{pool: pool}
}

var _ commands.ResourceRepository = (*ResourceRepository)(nil)

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	query, args, err := psql.Insert("resources").
		Columns("id", "name", "description", "resource_type", "capacity", "is_available", "location", "price_per_hour_cents").
		Values(
			res.ID(), res.Name(), res.Description(), res.ResourceType().String(),
			res.Capacity(), res.IsAvailable(), res.Location(), res.PricePerHourCents(),
		).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build insert resource query", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to insert resource", err)
	}
	return nil
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	query, args, err := psql.Update("resources").
		Set("name", res.Name()).
		Set("description", res.Description()).
		Set("resource_type", res.ResourceType().String()).
		Set("capacity", res.Capacity()).
		Set("is_available", res.IsAvailable()).
		Set("location", res.Location()).
		Set("price_per_hour_cents", res.PricePerHourCents()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": res.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build update resource query", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update resource", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := psql.Delete("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build delete resource query", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to delete resource", err)
	}
	if ct.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) FindByID(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	query, args, err := psql.Select(
		"id", "name", "description", "resource_type", "capacity",
		"is_available", "location", "price_per_hour_cents", "created_at", "updated_at",
	).
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select resource query", err)
	}

	var (
		name, description, resourceType, location string
		capacity                                  int
		isAvailable                               bool
		priceCents                                *int64
		createdAt, updatedAt                      time.Time
	)
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&id, &name, &description, &resourceType, &capacity,
		&isAvailable, &location, &priceCents, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan resource", err)
	}

	return resource.ReconstructResource(
		id, name, description, resource.Type(resourceType),
		capacity, isAvailable, location, priceCents,
		createdAt, updatedAt,
	), nil
}

// ResourceReader serves the booking commands' narrow view of a resource.
type ResourceReader struct {
	pool *pgxpool.Pool
}

func NewResourceReader(pool *pgxpool.Pool) *ResourceReader {
	return &ResourceReader{pool: pool}
}

var _ commands.ResourceReader = (*ResourceReader)(nil)

func (r *ResourceReader) FindByID(ctx context.Context, id uuid.UUID) (*commands.ResourceSnapshot, error) {
	query, args, err := psql.Select("id", "name", "is_available", "price_per_hour_cents").
		From("resources").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build resource snapshot query", err)
	}

	var snap commands.ResourceSnapshot
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&snap.ID, &snap.Name, &snap.IsAvailable, &snap.PricePerHourCents,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan resource snapshot", err)
	}
	return &snap, nil
}
