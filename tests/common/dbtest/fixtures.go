//go:build unit || e2e || integration

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"room-reservation/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword is the plain text behind every fixture user's hash.
const DefaultPassword = "kowhai-tree-42"

var (
	hashOnce    sync.Once
	defaultHash string
	hashErr     error
)

func passwordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		defaultHash, hashErr = password.HashPassword(DefaultPassword)
	})
	require.NoError(t, hashErr)
	return defaultHash
}

func CreateTestUser(t *testing.T, db DBLike, username, email string, isStaff bool) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	var emailArg any
	if email != "" {
		emailArg = email
	}
	tag, err := db.Exec(ctx, `INSERT INTO users (id, username, email, password_hash, is_staff, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (username) DO NOTHING`,
		userID, username, emailArg, passwordHash(t), isStaff)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
	}

	return userID
}

func DeactivateUser(t *testing.T, db DBLike, username string) {
	t.Helper()
	_, err := db.Exec(context.Background(), "UPDATE users SET is_active = false WHERE username = $1", username)
	require.NoError(t, err)
}

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, name, location, capacity) VALUES ($1, $2, $3, $4)",
		roomID, name, "Level 1", capacity)
	require.NoError(t, err)
	return roomID
}

// CreateTestReservation inserts directly, bypassing the overlap check.
func CreateTestReservation(t *testing.T, db DBLike, userID, roomID uuid.UUID, date, start, end string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, user_id, room_id, date, start_time, end_time)
		 VALUES ($1, $2, $3, $4::date, $5::time, $6::time)`,
		id, userID, roomID, date, start, end)
	require.NoError(t, err)
	return id
}

func CountReservations(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM reservations WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application tables
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
