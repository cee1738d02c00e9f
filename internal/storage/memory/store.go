package memory

import (
	"context"
	"sync"

	interfaces "github.com/sheikh-saqib/gpa-calculator/internal/interfaces"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// SubjectStore is an in-memory implementation of interfaces.SubjectStore.
// Nothing survives the process; it is the default when no store is configured.
type SubjectStore struct {
	mu       sync.Mutex             // protects subjects
	subjects []models.StoredSubject // last saved list
}

func NewSubjectStore() *SubjectStore {
	return &SubjectStore{
		subjects: make([]models.StoredSubject, 0),
	}
}

// Load returns a copy of the last saved list.
func (m *SubjectStore) Load(ctx context.Context) ([]models.StoredSubject, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// copy so callers can't modify internal state
	copied := make([]models.StoredSubject, len(m.subjects))
	copy(copied, m.subjects)
	return copied, nil
}

// Save replaces the stored list. Always succeeds.
func (m *SubjectStore) Save(ctx context.Context, subjects []models.StoredSubject) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.subjects = make([]models.StoredSubject, len(subjects))
	copy(m.subjects, subjects)
	return nil
}

func (m *SubjectStore) Close() error { return nil }

// Compile-time check: ensure SubjectStore implements interfaces.SubjectStore
var _ interfaces.SubjectStore = (*SubjectStore)(nil)
