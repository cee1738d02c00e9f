package models

import (
	"github.com/shopspring/decimal"
)

// SubjectRecord is a single subject held by the ledger
type SubjectRecord struct {
	ID          string          `json:"id"`                     // session-local lookup key
	Name        string          `json:"name"`                   // trimmed, never empty
	Credit      int             `json:"credit"`                 // 1..8
	GradeValue  decimal.Decimal `json:"grade_value"`            // 0.00..4.00
	LetterGrade string          `json:"letter_grade,omitempty"` // empty when the value is off the grade scale
	GradeBand   string          `json:"grade_band,omitempty"`   // A..E display group
}

// QualityPoints returns grade value weighted by credit.
func (s SubjectRecord) QualityPoints() decimal.Decimal {
	return s.GradeValue.Mul(decimal.NewFromInt(int64(s.Credit)))
}

func (s SubjectRecord) HasLetterGrade() bool {
	return s.LetterGrade != ""
}

// Stored strips the record down to what gets persisted.
func (s SubjectRecord) Stored() StoredSubject {
	return StoredSubject{
		Name:       s.Name,
		Credit:     s.Credit,
		GradeValue: s.GradeValue.InexactFloat64(),
	}
}

// StoredSubject is the persisted layout of a subject: ids and letters are
// regenerated on restore.
type StoredSubject struct {
	Name       string  `json:"name" yaml:"name"`
	Credit     int     `json:"credit" yaml:"credit"`
	GradeValue float64 `json:"grade_value" yaml:"grade_value"`
}

// StoredSubjects converts a ledger snapshot into its persisted form.
func StoredSubjects(records []SubjectRecord) []StoredSubject {
	stored := make([]StoredSubject, 0, len(records))
	for _, r := range records {
		stored = append(stored, r.Stored())
	}
	return stored
}
