package readstore

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelbook/internal/infra"
	"hotelbook/internal/usecase/queries"
)

type userReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) queries.UserReadStore {
	return &userReadStore{pool: pool}
}

func (s *userReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	const query = `
SELECT id, email, display_name, role, is_active
FROM users
WHERE id = $1`

	var view queries.AuthorizedUserView
	err := s.pool.QueryRow(ctx, query, id).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find user by id", err)
	}
	return &view, nil
}

func (s *userReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	const query = `
SELECT id, email, display_name, role, is_active, password_hash
FROM users
WHERE email = $1`

	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := s.pool.QueryRow(ctx, query, email).Scan(
		&view.ID, &view.Email, &view.DisplayName, &view.Role, &view.IsActive, &hash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindNotFound, "user not found", err)
		}
		return nil, "", infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to find user by email", err)
	}
	return &view, hash, nil
}
