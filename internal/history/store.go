package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages comparison history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the history database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	ctx = ensureContext(ctx)
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("open history: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := withWriteLock(ctx, store.lock, func() error {
		return store.initSchema(ctx)
	}); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts entry and returns it with ID, RunID, and CreatedAt filled in.
// A missing RunID is replaced with a fresh UUID; a zero CreatedAt becomes now.
func (s *Store) Record(ctx context.Context, entry Entry) (Entry, error) {
	ctx = ensureContext(ctx)
	if strings.TrimSpace(entry.RunID) == "" {
		entry.RunID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	err := withWriteLock(ctx, s.lock, func() error {
		return retryOnBusy(ctx, func() error {
			res, err := s.db.ExecContext(ctx,
				`INSERT INTO comparisons (
                    run_id, created_at, synonyms_path, original_path, suspect_path,
                    tuple_length, matches, suspect_tuples, percent
                ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				entry.RunID,
				entry.CreatedAt.Format(time.RFC3339Nano),
				entry.SynonymsPath,
				entry.OriginalPath,
				entry.SuspectPath,
				entry.TupleLength,
				entry.Matches,
				entry.SuspectTuples,
				entry.Percent,
			)
			if err != nil {
				return err
			}
			entry.ID, err = res.LastInsertId()
			return err
		})
	})
	if err != nil {
		return Entry{}, fmt.Errorf("record comparison: %w", err)
	}
	return entry, nil
}

// List returns recorded entries, most recently recorded first. A limit <= 0 returns all.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	ctx = ensureContext(ctx)
	query := `SELECT id, run_id, created_at, synonyms_path, original_path, suspect_path,
        tuple_length, matches, suspect_tuples, percent
        FROM comparisons ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	var entries []Entry
	err := retryOnBusy(ctx, func() error {
		entries = nil
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				return err
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	return entries, nil
}

// Clear removes every recorded entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	ctx = ensureContext(ctx)
	var removed int64
	err := withWriteLock(ctx, s.lock, func() error {
		return retryOnBusy(ctx, func() error {
			res, err := s.db.ExecContext(ctx, "DELETE FROM comparisons")
			if err != nil {
				return err
			}
			removed, err = res.RowsAffected()
			return err
		})
	})
	if err != nil {
		return 0, fmt.Errorf("clear comparisons: %w", err)
	}
	return removed, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var (
		entry   Entry
		created string
	)
	if err := row.Scan(
		&entry.ID,
		&entry.RunID,
		&created,
		&entry.SynonymsPath,
		&entry.OriginalPath,
		&entry.SuspectPath,
		&entry.TupleLength,
		&entry.Matches,
		&entry.SuspectTuples,
		&entry.Percent,
	); err != nil {
		return Entry{}, err
	}
	parsed, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return Entry{}, fmt.Errorf("parse created_at %q: %w", created, err)
	}
	entry.CreatedAt = parsed
	return entry, nil
}
