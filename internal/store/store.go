// Package store handles the SQLite event journal.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/verte-zerg/tuiclock/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed width so stored instants sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for journal events.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY,
			kind TEXT NOT NULL,
			ref TEXT NOT NULL,
			label TEXT NOT NULL,
			at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_at ON events(at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertEvent records one journal event and returns its id.
func (s *Store) InsertEvent(ctx context.Context, ev model.JournalEvent) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO events (kind, ref, label, at) VALUES (?, ?, ?, ?)`,
		string(ev.Kind),
		ev.Ref,
		ev.Label,
		ev.At.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListEvents returns events oldest first. A positive last keeps only the most
// recent last events.
func (s *Store) ListEvents(ctx context.Context, cfg model.HistoryConfig) ([]model.JournalEvent, error) {
	query := `SELECT id, kind, ref, label, at FROM (
		SELECT id, kind, ref, label, at FROM events
		ORDER BY at DESC, id DESC
		LIMIT ?
	) ORDER BY at ASC, id ASC`
	limit := cfg.Last
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var events []model.JournalEvent
	for rows.Next() {
		var ev model.JournalEvent
		var kind, at string
		if err := rows.Scan(&ev.ID, &kind, &ev.Ref, &ev.Label, &at); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, at)
		if err != nil {
			return nil, err
		}
		ev.Kind = model.EventKind(kind)
		ev.At = parsed
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
