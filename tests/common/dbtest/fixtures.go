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
	"github.com/stretchr/testify/require"
)

func CreateUserProfile(t *testing.T, db DBLike, role, djName, email string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO user_profiles (id, role, first_name, last_name, dj_name, email) VALUES ($1, $2, 'Test', 'User', NULLIF($3, ''), NULLIF($4, ''))",
		id, role, djName, email)
	require.NoError(t, err)
	return id
}

func CreateOpportunity(t *testing.T, db DBLike, organizerID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO opportunities (id, organizer_id, title) VALUES ($1, $2, $3)",
		id, organizerID, title)
	require.NoError(t, err)
	return id
}

func CreateApplication(t *testing.T, db DBLike, opportunityID, djID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO applications (id, opportunity_id, dj_id, status) VALUES ($1, $2, $3, $4)",
		id, opportunityID, djID, status)
	require.NoError(t, err)
	return id
}

func CreateFormResponse(t *testing.T, db DBLike, opportunityID, djID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO application_form_responses (id, opportunity_id, dj_id, status, answers) VALUES ($1, $2, $3, $4, '{\"genre\": \"house\"}')",
		id, opportunityID, djID, status)
	require.NoError(t, err)
	return id
}

func CreateBookingRequest(t *testing.T, db DBLike, brandID, djID uuid.UUID, eventName, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO booking_requests (id, brand_id, dj_id, event_name, status) VALUES ($1, $2, $3, $4, $5)",
		id, brandID, djID, eventName, status)
	require.NoError(t, err)
	return id
}

// table is one of the fixed decision tables; it is never user input
func RecordStatus(t *testing.T, db DBLike, table string, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM "+table+" WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

type NotificationRow struct {
	Title     string
	Message   string
	Type      string
	RelatedID uuid.UUID
}

func NotificationsFor(t *testing.T, db DBLike, userID uuid.UUID) []NotificationRow {
	t.Helper()

	rows, err := db.Query(context.Background(),
		"SELECT title, message, type, related_id FROM notifications WHERE user_id = $1 ORDER BY created_at", userID)
	require.NoError(t, err)
	defer rows.Close()

	var out []NotificationRow
	for rows.Next() {
		var n NotificationRow
		require.NoError(t, rows.Scan(&n.Title, &n.Message, &n.Type, &n.RelatedID))
		out = append(out, n)
	}
	require.NoError(t, rows.Err())
	return out
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}
	return nil
}
