package grading

import (
	"github.com/shopspring/decimal"

	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// Band maps a closed GPA range to a status
type Band struct {
	Min   decimal.Decimal `json:"min"`
	Max   decimal.Decimal `json:"max"`
	Label string          `json:"label"`
	Color string          `json:"color"`
	Emoji string          `json:"emoji"`
}

func (b Band) Classification() models.Classification {
	return models.Classification{Label: b.Label, Color: b.Color, Emoji: b.Emoji}
}

// Undefined is returned for a GPA outside [0, 4].
var Undefined = models.Classification{Label: "UNDEFINED", Color: "#666", Emoji: "❓"}

func band(lo, hi, label, color, emoji string) Band {
	return Band{
		Min:   decimal.RequireFromString(lo),
		Max:   decimal.RequireFromString(hi),
		Label: label,
		Color: color,
		Emoji: emoji,
	}
}

// ordered highest to lowest; the scan relies on it
var bands = []Band{
	band("3.85", "4.00", "SUMMA CUM LAUDE", "#4ade80", "🏆"),
	band("3.70", "3.84", "MAGNA CUM LAUDE", "#22c55e", "🎖️"),
	band("3.50", "3.69", "CUM LAUDE", "#16a34a", "⭐"),
	band("3.30", "3.49", "SANGAT MEMUASKAN", "#60a5fa", "👍"),
	band("3.00", "3.29", "MEMUASKAN", "#3b82f6", "👌"),
	band("2.70", "2.99", "BAIK", "#8b5cf6", "✅"),
	band("2.30", "2.69", "CUKUP BAIK", "#f59e0b", "🔶"),
	band("2.00", "2.29", "CUKUP", "#f97316", "⚠️"),
	band("1.70", "1.99", "KURANG", "#ef4444", "🔻"),
	band("1.00", "1.69", "SANGAT KURANG", "#dc2626", "❌"),
	band("0.00", "0.99", "GAGAL", "#991b1b", "💀"),
}

// Bands returns a copy of the classification table, highest band first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify maps a GPA to its band. Only the lower bound of each band is
// tested, so a value between two printed ranges (3.845) lands in the lower one.
func Classify(gpa decimal.Decimal) models.Classification {
	if !InRange(gpa) {
		return Undefined
	}
	for _, b := range bands {
		if gpa.GreaterThanOrEqual(b.Min) {
			return b.Classification()
		}
	}
	return Undefined
}
