// Package sqlitestore keeps uploads and completed sessions in a single
// SQLite file. It implements the same repository contracts as the Postgres
// repositories and is meant for local runs and single-host deployments.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	errorvalues "github.com/limbo/sketchstreak/internal/error_values"
	"github.com/limbo/sketchstreak/pkg/entity"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const dayLayout = "2006-01-02"

type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// One writer at a time is all SQLite can do anyway
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		if _, err := conn.Exec(p); err != nil {
			conn.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS uploads (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			display_name TEXT NOT NULL DEFAULT '',
			media_ref TEXT NOT NULL,
			upload_date TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE INDEX IF NOT EXISTS idx_uploads_user_date ON uploads(user_id, upload_date)`,
		`CREATE TABLE IF NOT EXISTS completed_sessions (
			user_id TEXT NOT NULL,
			session_date TEXT NOT NULL,
			completed_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (user_id, session_date)
		)`,
	}
	for _, m := range migrations {
		if _, err := s.conn.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

func (s *Store) Create(ctx context.Context, upload *entity.UploadRecord) error {
	if upload == nil {
		return errors.New("upload is nil")
	}
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO uploads (id, user_id, display_name, media_ref, upload_date) VALUES (?, ?, ?, ?, ?)`,
		upload.ID.String(), upload.UserID, upload.DisplayName, upload.MediaRef, upload.UploadDate.Format(dayLayout),
	)
	if err != nil {
		var sqliteErr *sqlite.Error
		// Primary code survives whether or not extended codes are on
		if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			return errorvalues.ErrUploadExists
		}
		return fmt.Errorf("creating upload: %w", err)
	}
	return nil
}

func (s *Store) ListDistinctDays(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT DISTINCT upload_date FROM uploads WHERE user_id = ? ORDER BY upload_date DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing upload days: %w", err)
	}
	defer rows.Close()

	days := make([]time.Time, 0, 16)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning upload day: %w", err)
		}
		day, err := time.Parse(dayLayout, raw)
		if err != nil {
			return nil, fmt.Errorf("parsing upload day %q: %w", raw, err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM uploads WHERE user_id = ?`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting uploads: %w", err)
	}
	return count, nil
}

func (s *Store) RecentDailyCounts(ctx context.Context, userID string, limit int) ([]entity.DailyCount, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT upload_date, COUNT(*) FROM uploads WHERE user_id = ?
		 GROUP BY upload_date ORDER BY upload_date DESC LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("getting recent upload counts: %w", err)
	}
	defer rows.Close()

	result := make([]entity.DailyCount, 0, limit)
	for rows.Next() {
		var raw string
		var dc entity.DailyCount
		if err := rows.Scan(&raw, &dc.Count); err != nil {
			return nil, fmt.Errorf("scanning daily count: %w", err)
		}
		if dc.Date, err = time.Parse(dayLayout, raw); err != nil {
			return nil, fmt.Errorf("parsing upload day %q: %w", raw, err)
		}
		result = append(result, dc)
	}
	return result, rows.Err()
}

func (s *Store) ExistsOnDay(ctx context.Context, userID string, day time.Time) (bool, error) {
	var exists bool
	err := s.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM uploads WHERE user_id = ? AND upload_date = ?)`,
		userID, day.Format(dayLayout),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("inspecting upload existence: %w", err)
	}
	return exists, nil
}

func (s *Store) MarkComplete(ctx context.Context, userID string, day time.Time) error {
	_, err := s.conn.ExecContext(ctx,
		`INSERT INTO completed_sessions (user_id, session_date) VALUES (?, ?)
		 ON CONFLICT (user_id, session_date) DO NOTHING`,
		userID, day.Format(dayLayout),
	)
	if err != nil {
		return fmt.Errorf("marking session complete: %w", err)
	}
	return nil
}

func (s *Store) IsComplete(ctx context.Context, userID string, day time.Time) (bool, error) {
	var complete bool
	err := s.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM completed_sessions WHERE user_id = ? AND session_date = ?)`,
		userID, day.Format(dayLayout),
	).Scan(&complete)
	if err != nil {
		return false, fmt.Errorf("inspecting session completion: %w", err)
	}
	return complete, nil
}
