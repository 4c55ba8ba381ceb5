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

const dateLayout = "2006-01-02"

func CreateTestField(t *testing.T, db DBLike, name string, hourlyPriceCents int64) uuid.UUID {
	t.Helper()

	var fieldID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO fields (name, location, hourly_price_cents) VALUES ($1, $2, $3) RETURNING id",
		name, "Test Park", hourlyPriceCents).Scan(&fieldID)
	require.NoError(t, err)
	return fieldID
}

func DeactivateField(t *testing.T, db DBLike, fieldID uuid.UUID) {
	t.Helper()

	_, err := db.Exec(context.Background(), "UPDATE fields SET status = 'inactive' WHERE id = $1", fieldID)
	require.NoError(t, err)
}

// CreateWeeklySchedule adds a recurring template; start and end are "HH:MM".
func CreateWeeklySchedule(t *testing.T, db DBLike, fieldID uuid.UUID, weekday time.Weekday, start, end string, slotMinutes int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO field_schedules (field_id, day_of_week, start_time, end_time, duration_minutes)
		 VALUES ($1, $2, $3::time, $4::time, $5) RETURNING id`,
		fieldID, int16(weekday), start, end, slotMinutes).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateDateOverride(t *testing.T, db DBLike, fieldID uuid.UUID, date time.Time, start, end string, slotMinutes int, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(),
		`INSERT INTO field_schedules (field_id, specific_date, start_time, end_time, duration_minutes, active)
		 VALUES ($1, $2::date, $3::time, $4::time, $5, $6) RETURNING id`,
		fieldID, date.Format(dateLayout), start, end, slotMinutes, active).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestReservation(t *testing.T, db DBLike, fieldID, userID uuid.UUID, date time.Time, start string, minutes int, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, field_id, user_id, date, start_time, duration_minutes, price_total_cents, status)
		 VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8)`,
		id, fieldID, userID, date.Format(dateLayout), start, minutes, int64(0), status)
	require.NoError(t, err)
	return id
}

func ReservationStatus(t *testing.T, db DBLike, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM reservations WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func ReservationPriceCents(t *testing.T, db DBLike, id uuid.UUID) int64 {
	t.Helper()

	var cents int64
	err := db.QueryRow(context.Background(), "SELECT price_total_cents FROM reservations WHERE id = $1", id).Scan(&cents)
	require.NoError(t, err)
	return cents
}

func CountJobs(t *testing.T, db DBLike, topic string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM notification_jobs WHERE topic = $1", topic).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates every application table, leaving goose's version table alone
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('goose_db_version')`)
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
