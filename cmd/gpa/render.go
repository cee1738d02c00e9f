package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/sheikh-saqib/gpa-calculator/internal/grading"
	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8a2be2"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#666"))
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// newTable returns a bordered table with a coloured header row.
func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(mutedStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headingStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(headers...)
}

func statusStyle(c models.Classification) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(c.Color)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(c.Color)).
		Padding(0, 2)
}

// gradeLabel renders "A- (3.70)", or just the value for off-scale grades.
func gradeLabel(s models.SubjectRecord) string {
	if !s.HasLetterGrade() {
		return s.GradeValue.StringFixed(2)
	}
	return fmt.Sprintf("%s (%s)", s.LetterGrade, s.GradeValue.StringFixed(2))
}

func renderSubjects(w io.Writer, subjects []models.SubjectRecord) error {
	if len(subjects) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No subjects yet. Add one with `gpa add`."))
		return nil
	}

	t := newTable("ID", "SUBJECT", "CREDIT", "GRADE")
	for _, s := range subjects {
		t.Row(s.ID, s.Name, strconv.Itoa(s.Credit), gradeLabel(s))
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func renderResult(w io.Writer, r models.EvaluationResult) {
	fmt.Fprintln(w, headingStyle.Render("GPA "+r.FormattedGPA()))
	fmt.Fprintln(w, statusStyle(r.Classification).Render(r.Classification.Status()))
	fmt.Fprintf(w, "Total credits:        %d\n", r.TotalCredits)
	fmt.Fprintf(w, "Subjects:             %d\n", r.SubjectCount)
	fmt.Fprintf(w, "Total quality points: %s\n", r.FormattedQualityPoints())
}

func renderReference(w io.Writer) error {
	scale := newTable("LETTER", "VALUE")
	for _, step := range grading.Scale() {
		scale.Row(step.Letter, step.Value.StringFixed(2))
	}

	bands := newTable("RANGE", "STATUS")
	for _, b := range grading.Bands() {
		bands.Row(b.Min.StringFixed(2)+" - "+b.Max.StringFixed(2), b.Emoji+" "+b.Label)
	}

	_, err := fmt.Fprintf(w, "%s\n%s\n\n%s\n%s\n",
		headingStyle.Render("Grade scale"), scale.Render(),
		headingStyle.Render("Status bands"), bands.Render())
	return err
}
