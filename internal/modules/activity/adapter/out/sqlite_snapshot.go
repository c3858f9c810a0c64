package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gather/internal/modules/activity/domain"
	activityout "gather/internal/modules/activity/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteSnapshotStore mirrors the last server listing per filter. Rows
// are keyed (filter, id) so the same activity can sit in both sets.
type SQLiteSnapshotStore struct {
	db *sql.DB
}

func NewSQLiteSnapshotStore(dbPath string) (activityout.SnapshotStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteSnapshotStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteSnapshotStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS activity_snapshot (
  filter TEXT NOT NULL,
  id TEXT NOT NULL,
  position INTEGER NOT NULL,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  location TEXT NOT NULL,
  category TEXT NOT NULL,
  image_url TEXT,
  start_date TEXT,
  end_date TEXT,
  owner TEXT,
  PRIMARY KEY (filter, id)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create activity_snapshot table: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) ReplaceFilter(ctx context.Context, filter domain.Filter, activities []domain.Activity) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin snapshot replace: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM activity_snapshot WHERE filter = ?`, string(filter)); err != nil {
		return fmt.Errorf("clear snapshot filter: %w", err)
	}
	for i, a := range activities {
		if err := upsertRow(ctx, tx, filter, i, a); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit snapshot replace: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) Upsert(ctx context.Context, filter domain.Filter, activity domain.Activity) error {
	// New rows go to position -1 so they list first, matching the
	// prepend-on-create behavior of the live list.
	return upsertRow(ctx, s.db, filter, -1, activity)
}

func (s *SQLiteSnapshotStore) Remove(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM activity_snapshot WHERE id = ?`, id); err != nil {
		return fmt.Errorf("remove snapshot row: %w", err)
	}
	return nil
}

func (s *SQLiteSnapshotStore) List(ctx context.Context, filter domain.Filter) ([]domain.Activity, error) {
	const query = `
SELECT id, title, description, location, category, image_url, start_date, end_date, owner
FROM activity_snapshot
WHERE filter = ?
ORDER BY position, id
`
	rows, err := s.db.QueryContext(ctx, query, string(filter))
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		var (
			a          domain.Activity
			category   string
			start, end string
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Location, &category, &a.ImageURL, &start, &end, &a.Owner); err != nil {
			return nil, fmt.Errorf("scan snapshot row: %w", err)
		}
		a.Category = domain.Category(category)
		a.StartDate = parseStoredDate(start)
		a.EndDate = parseStoredDate(end)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshot rows: %w", err)
	}
	return activities, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsertRow(ctx context.Context, db execer, filter domain.Filter, position int, a domain.Activity) error {
	const stmt = `
INSERT INTO activity_snapshot (filter, id, position, title, description, location, category, image_url, start_date, end_date, owner)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(filter, id) DO UPDATE SET
  position=excluded.position,
  title=excluded.title,
  description=excluded.description,
  location=excluded.location,
  category=excluded.category,
  image_url=excluded.image_url,
  start_date=excluded.start_date,
  end_date=excluded.end_date,
  owner=excluded.owner;
`
	_, err := db.ExecContext(ctx, stmt,
		string(filter),
		a.ID,
		position,
		a.Title,
		a.Description,
		a.Location,
		string(a.Category),
		a.ImageURL,
		storedDate(a.StartDate),
		storedDate(a.EndDate),
		a.Owner,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot row: %w", err)
	}
	return nil
}

const storedDateLayout = "2006-01-02T15:04:05Z07:00"

func storedDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(storedDateLayout)
}

func parseStoredDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(storedDateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
