package repository

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"hotelbook/internal/domain/user"
	"hotelbook/internal/infra"
	"hotelbook/internal/usecase/commands"
)

type userRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) commands.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	const stmt = `
INSERT INTO users (id, email, password_hash, display_name, role, is_active)
VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, stmt,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.DisplayName(), u.Role().String(), u.IsActive(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(slog.Default(), infra.KindDuplicateKey, "email already registered", err)
		}
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	const stmt = `UPDATE users SET last_login = $2, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, stmt, id, time.Now())
	if err != nil {
		return infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to update last login", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
