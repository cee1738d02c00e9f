package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces" // interface SubjectStore
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS gpa_subjects (
	ledger_key  TEXT    NOT NULL,
	position    INTEGER NOT NULL,
	name        TEXT    NOT NULL,
	credit      INTEGER NOT NULL,
	grade_value NUMERIC NOT NULL,
	PRIMARY KEY (ledger_key, position)
)`

// SubjectStore keeps one ordered subject list per ledger key.
type SubjectStore struct {
	db  *sql.DB
	key string
}

func NewSubjectStore(db *sql.DB, key string) *SubjectStore {
	return &SubjectStore{
		db:  db,
		key: key,
	}
}

// Open connects to dsn and makes sure the table exists.
func Open(ctx context.Context, dsn, key string) (*SubjectStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	store := NewSubjectStore(db, key)
	if err := store.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

func (p *SubjectStore) EnsureSchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create gpa_subjects: %w", err)
	}
	return nil
}

func (p *SubjectStore) Load(ctx context.Context) ([]models.StoredSubject, error) {
	const query = `SELECT name, credit, grade_value FROM gpa_subjects
	WHERE ledger_key = $1 ORDER BY position`

	rows, err := p.db.QueryContext(ctx, query, p.key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subjects := make([]models.StoredSubject, 0)
	for rows.Next() {
		var s models.StoredSubject
		if err := rows.Scan(&s.Name, &s.Credit, &s.GradeValue); err != nil {
			return nil, err
		}
		subjects = append(subjects, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subjects, nil
}

// Save replaces the rows of this ledger key in a single transaction.
func (p *SubjectStore) Save(ctx context.Context, subjects []models.StoredSubject) (err error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	if _, err = dbTx.ExecContext(ctx, `DELETE FROM gpa_subjects WHERE ledger_key = $1`, p.key); err != nil {
		return err
	}

	stmt, err := dbTx.PrepareContext(ctx, pq.CopyIn("gpa_subjects", "ledger_key", "position", "name", "credit", "grade_value"))
	if err != nil {
		return err
	}
	for i, s := range subjects {
		if _, err = stmt.ExecContext(ctx, p.key, i, s.Name, s.Credit, s.GradeValue); err != nil {
			stmt.Close()
			return err
		}
	}
	// flush the COPY buffer
	if _, err = stmt.ExecContext(ctx); err != nil {
		stmt.Close()
		return err
	}
	if err = stmt.Close(); err != nil {
		return err
	}

	return dbTx.Commit()
}

func (p *SubjectStore) Close() error {
	return p.db.Close()
}

var _ interfaces.SubjectStore = (*SubjectStore)(nil)
