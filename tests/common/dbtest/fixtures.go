//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"guesthouse-booking/internal/domain/room"
	"guesthouse-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const DefaultPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func defaultPasswordHash(t *testing.T) string {
	hashOnce.Do(func() {
		h, err := password.HashPasswordWithCost(DefaultPassword, bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = h
	})
	return passwordHash
}

// CreateTestUser inserts an active back-office account whose password is
// DefaultPassword. An existing email keeps its id.
func CreateTestUser(t *testing.T, db Conn, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()
	tag, err := db.Exec(ctx,
		`INSERT INTO admin_users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, defaultPasswordHash(t), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM admin_users WHERE email = $1", email).Scan(&userID))
	}
	return userID
}

func DeactivateUser(t *testing.T, db Conn, email string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE admin_users SET is_active = false WHERE email = $1", email)
	require.NoError(t, err)
}

// InsertBooking writes a booking row directly, bypassing the availability
// check. Overlaps still hit the exclusion constraint.
func InsertBooking(ctx context.Context, db Conn, roomID string, checkIn, checkOut time.Time, status string) (uuid.UUID, error) {
	id := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(ctx,
		`INSERT INTO booking_periods (id, room_id, check_in, check_out, guest_name, guest_email, guest_phone,
			status, total_millimes, promo_code, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'Test Guest', 'guest@example.com', '+216 20 000 000', $5, 0, NULL, $6, $6)`,
		id, roomID, checkIn, checkOut, status, now)
	return id, err
}

// SeedReferenceData mirrors the room catalog so bookings have rows to
// reference and lock.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	batch := &pgx.Batch{}
	for _, r := range room.DefaultCatalog().All() {
		batch.Queue(`INSERT INTO rooms (id, number, category, capacity, base_price) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`,
			r.ID().String(), r.Number(), r.Category().String(), r.Capacity(), r.BasePrice().Millimes())
	}
	return pool.SendBatch(ctx, batch).Close()
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
		if err != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
