package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/noodlecollie/RekordboxFlacToMp3/internal/config"
)

// Conversion outcome statuses.
const (
	StatusConverted = "converted"
	StatusFailed    = "failed"
)

// Record is one conversion attempt.
type Record struct {
	ID          int64
	RunID       string
	Source      string
	Destination string
	Status      string
	// Detail carries the tail of the transcoder's captured output for failed
	// attempts; empty on success.
	Detail    string
	CreatedAt time.Time
}

// Store manages conversion history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and applies the schema.
func Open(cfg *config.Config) (*Store, error) {
	if err := os.MkdirAll(cfg.History.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.History.Dir, "history.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS conversions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id TEXT NOT NULL,
    source TEXT NOT NULL,
    destination TEXT NOT NULL,
    status TEXT NOT NULL,
    detail TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_conversions_created_at ON conversions(created_at);`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Add appends one conversion attempt.
func (s *Store) Add(ctx context.Context, rec Record) (int64, error) {
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO conversions (run_id, source, destination, status, detail, created_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Source,
		rec.Destination,
		rec.Status,
		rec.Detail,
		createdAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return 0, fmt.Errorf("insert conversion: %w", err)
	}
	return res.LastInsertId()
}

// Recent returns the most recent conversion attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, run_id, source, destination, status, detail, created_at
         FROM conversions ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var createdAt string
		if err := rows.Scan(&rec.ID, &rec.RunID, &rec.Source, &rec.Destination, &rec.Status, &rec.Detail, &createdAt); err != nil {
			return nil, fmt.Errorf("scan conversion: %w", err)
		}
		if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
			rec.CreatedAt = parsed
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
