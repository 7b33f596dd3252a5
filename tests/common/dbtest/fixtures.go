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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestClient(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO clients (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		clientID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM clients WHERE email = $1", email).Scan(&clientID)
	}

	return clientID
}

func CreateTestRoom(t *testing.T, db DBLike, number string, capacity int, nightlyPrice string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO rooms (id, number, room_type, capacity, nightly_price) VALUES ($1, $2, 'DOUBLE', $3, $4::numeric)",
		roomID, number, capacity, nightlyPrice)
	require.NoError(t, err)

	return roomID
}

// SetRoomStatus bypasses the API so tests can start from MAINTENANCE or OCCUPIED.
func SetRoomStatus(t *testing.T, db DBLike, roomID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE rooms SET status = $2 WHERE id = $1", roomID, status)
	require.NoError(t, err)
}

func LedgerBalance(t *testing.T, db DBLike, clientID uuid.UUID) decimal.Decimal {
	t.Helper()

	var balance string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE((SELECT balance FROM client_ledger_heads WHERE client_id = $1), 0)::text", clientID).Scan(&balance)
	require.NoError(t, err)
	return decimal.RequireFromString(balance)
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := "SELECT count(*) FROM " + table
	if where != "" {
		query += " WHERE " + where
	}
	require.NoError(t, db.QueryRow(context.Background(), query, args...).Scan(&n))
	return n
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO clients (id, name, email) VALUES
		    (gen_random_uuid(), 'Walk-in Guest', 'walkin@hotel.test')
		ON CONFLICT (email) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
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
