package events

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TopicSubjectAdded   = "subject_added"
	TopicSubjectRemoved = "subject_removed"
	TopicGPAComputed    = "gpa_computed"
)

type SubjectAdded struct {
	SubjectID   string          `json:"subject_id"`
	Name        string          `json:"name"`
	Credit      int             `json:"credit"`
	GradeValue  decimal.Decimal `json:"grade_value"`
	LetterGrade string          `json:"letter_grade,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

type SubjectRemoved struct {
	SubjectID  string    `json:"subject_id"`
	Name       string    `json:"name"`
	OccurredAt time.Time `json:"occurred_at"`
}

type GPAComputed struct {
	GPA                decimal.Decimal `json:"gpa"`
	TotalCredits       int             `json:"total_credits"`
	TotalQualityPoints decimal.Decimal `json:"total_quality_points"`
	SubjectCount       int             `json:"subject_count"`
	Status             string          `json:"status"`
	OccurredAt         time.Time       `json:"occurred_at"`
}

func (e SubjectAdded) EventKey() string   { return e.SubjectID }
func (e SubjectRemoved) EventKey() string { return e.SubjectID }
