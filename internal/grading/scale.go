package grading

import (
	"github.com/shopspring/decimal"
)

// GradeStep is one entry of the grade scale
type GradeStep struct {
	Value  decimal.Decimal `json:"value"`
	Letter string          `json:"letter"`
	Band   string          `json:"band"` // coarse display group A..E
}

var (
	MinGradeValue = decimal.Zero
	MaxGradeValue = decimal.NewFromInt(4)
)

// ordered highest to lowest
var scale = []GradeStep{
	{Value: decimal.RequireFromString("4.00"), Letter: "A", Band: "A"},
	{Value: decimal.RequireFromString("3.70"), Letter: "A-", Band: "A"},
	{Value: decimal.RequireFromString("3.30"), Letter: "B+", Band: "B"},
	{Value: decimal.RequireFromString("3.00"), Letter: "B", Band: "B"},
	{Value: decimal.RequireFromString("2.70"), Letter: "B-", Band: "B"},
	{Value: decimal.RequireFromString("2.30"), Letter: "C+", Band: "C"},
	{Value: decimal.RequireFromString("2.00"), Letter: "C", Band: "C"},
	{Value: decimal.RequireFromString("1.70"), Letter: "C-", Band: "C"},
	{Value: decimal.RequireFromString("1.30"), Letter: "D+", Band: "D"},
	{Value: decimal.RequireFromString("1.00"), Letter: "D", Band: "D"},
	{Value: decimal.RequireFromString("0.00"), Letter: "E", Band: "E"},
}

// Scale returns a copy of the grade scale, highest value first.
func Scale() []GradeStep {
	out := make([]GradeStep, len(scale))
	copy(out, scale)
	return out
}

// LookupGrade finds the step whose value equals v rounded to two places.
// Values off the scale (e.g. 3.85) report false; that is not an error.
func LookupGrade(v decimal.Decimal) (GradeStep, bool) {
	rounded := v.Round(2)
	for _, step := range scale {
		if rounded.Equal(step.Value) {
			return step, true
		}
	}
	return GradeStep{}, false
}

// InRange reports whether v is a usable grade value.
func InRange(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(MinGradeValue) && v.LessThanOrEqual(MaxGradeValue)
}
