package models

import (
	"github.com/shopspring/decimal"
)

// Classification is the qualitative status attached to a GPA
type Classification struct {
	Label string `json:"label"`
	Color string `json:"color"` // opaque token, passed through to views
	Emoji string `json:"emoji"`
}

// Status renders the label the way it is shown to the user, e.g. "🏆 SUMMA CUM LAUDE".
func (c Classification) Status() string {
	if c.Emoji == "" {
		return c.Label
	}
	return c.Emoji + " " + c.Label
}

// EvaluationResult is derived from a ledger snapshot and never stored
type EvaluationResult struct {
	GPA                decimal.Decimal `json:"gpa"` // rounded to 2 places
	TotalCredits       int             `json:"total_credits"`
	TotalQualityPoints decimal.Decimal `json:"total_quality_points"`
	SubjectCount       int             `json:"subject_count"`
	Classification     Classification  `json:"classification"`
}

func (r EvaluationResult) FormattedGPA() string {
	return r.GPA.StringFixed(2)
}

func (r EvaluationResult) FormattedQualityPoints() string {
	return r.TotalQualityPoints.StringFixed(2)
}
