//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures do not pay the
// hashing cost per test.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, display_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test Staff", role,
	)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}
	return userID
}

func CreateTestBooking(t *testing.T, db DBLike, guestName, category string, nights int, storedTotal string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		`INSERT INTO bookings (guest_name, guest_phone, guest_email, document_number, category, nights, stored_total)
		 VALUES ($1, '+1 (555) 000-0000', 'guest@example.com', 'DOC-1', $2, $3, $4)
		 RETURNING id`,
		guestName, category, nights, storedTotal,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

// ResetDB truncates mutable tables between subtests.
func ResetDB(pool *pgxpool.Pool) error {
	_, err := pool.Exec(context.Background(), "TRUNCATE bookings, users RESTART IDENTITY CASCADE")
	return err
}

// SeedReferenceData is a hook for fixed reference rows. The schema has
// none today; rates and tax live in configuration, not the database.
func SeedReferenceData(_ *pgxpool.Pool) error {
	return nil
}
