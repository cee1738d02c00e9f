package interfaces

import (
	"context"

	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// SubjectStore persists the ordered subject list of a ledger.
// Save replaces whatever was stored before.
type SubjectStore interface {
	Load(ctx context.Context) ([]models.StoredSubject, error)
	Save(ctx context.Context, subjects []models.StoredSubject) error
}
