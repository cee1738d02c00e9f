package evaluator

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/gpa-calculator/internal/grading"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// GPAPlaces is the precision of a reported GPA.
const GPAPlaces = 2

// ErrEmptyLedger is returned when there is nothing to average.
var ErrEmptyLedger = errors.New("no subjects to evaluate")

// Compute returns the credit-weighted average of records. The GPA is
// rounded half away from zero to two places and that rounded value is
// what gets classified.
func Compute(records []models.SubjectRecord) (models.EvaluationResult, error) {
	if len(records) == 0 {
		return models.EvaluationResult{}, ErrEmptyLedger
	}

	totalQualityPoints := decimal.Zero
	totalCredits := 0
	for _, r := range records {
		totalQualityPoints = totalQualityPoints.Add(r.QualityPoints())
		totalCredits += r.Credit
	}
	if totalCredits <= 0 {
		// only reachable with records that bypassed the ledger
		return models.EvaluationResult{}, ErrEmptyLedger
	}

	gpa := totalQualityPoints.DivRound(decimal.NewFromInt(int64(totalCredits)), GPAPlaces)

	return models.EvaluationResult{
		GPA:                gpa,
		TotalCredits:       totalCredits,
		TotalQualityPoints: totalQualityPoints,
		SubjectCount:       len(records),
		Classification:     grading.Classify(gpa),
	}, nil
}
