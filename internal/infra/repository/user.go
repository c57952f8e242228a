package repository

import (
	"context"
	"errors"
	"time"

	"booking-system/internal/domain/user"
	"booking-system/internal/infra"
	"booking-system/internal/usecase/commands"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

var _ commands.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	query, args, err := psql.Select(
		"id", "email", "hashed_password", "role", "is_active", "created_at", "updated_at",
	).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build select user query", err)
	}

	var (
		id                   uuid.UUID
		emailValue, hashed   string
		role                 string
		isActive             bool
		createdAt, updatedAt time.Time
	)
	err = r.pool.QueryRow(ctx, query, args...).Scan(
		&id, &emailValue, &hashed, &role, &isActive, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan user", err)
	}

	emailVO, err := user.NewEmail(emailValue)
	if err != nil {
		return nil, infra.WrapRepoErr("stored email is invalid", err)
	}
	roleVO, err := user.NewRole(role)
	if err != nil {
		return nil, infra.WrapRepoErr("stored role is invalid", err)
	}

	return user.ReconstructUser(id, emailVO, hashed, roleVO, isActive, createdAt, updatedAt), nil
}
