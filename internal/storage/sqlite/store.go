package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

// SubjectStore is a local key-value store: the whole subject list is kept
// as one JSON document under a key.
type SubjectStore struct {
	db  *sql.DB
	key string
}

// Open opens (or creates) the database file at path.
func Open(ctx context.Context, path, key string) (*SubjectStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	// a single writer keeps SQLITE_BUSY away
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}
	return &SubjectStore{db: db, key: key}, nil
}

// Load returns an empty list when nothing was saved under the key yet.
func (s *SubjectStore) Load(ctx context.Context) ([]models.StoredSubject, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, s.key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return []models.StoredSubject{}, nil
	}
	if err != nil {
		return nil, err
	}

	var subjects []models.StoredSubject
	if err := json.Unmarshal([]byte(value), &subjects); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.key, err)
	}
	return subjects, nil
}

func (s *SubjectStore) Save(ctx context.Context, subjects []models.StoredSubject) error {
	if subjects == nil {
		subjects = []models.StoredSubject{}
	}
	data, err := json.Marshal(subjects)
	if err != nil {
		return err
	}

	const query = `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err = s.db.ExecContext(ctx, query, s.key, string(data))
	return err
}

func (s *SubjectStore) Close() error {
	return s.db.Close()
}

var _ interfaces.SubjectStore = (*SubjectStore)(nil)
