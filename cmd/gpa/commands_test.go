package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/gpa-calculator/internal/models"
)

// runCLI executes one invocation against a sqlite file, like separate
// shell commands would.
func runCLI(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GPA_STORE", "sqlite")
	t.Setenv("GPA_SQLITE_PATH", dbPath)
	t.Setenv("GPA_STORE_KEY", "gpaSubjects")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--env-file", filepath.Join(t.TempDir(), "none.env")))

	err := root.Execute()
	return out.String(), err
}

func TestCLIFlow(t *testing.T) {
	db := filepath.Join(t.TempDir(), "gpa.db")

	out, err := runCLI(t, db, "add", "--name", "Kalkulus", "--credit", "4", "--grade", "4")
	require.NoError(t, err)
	assert.Contains(t, out, `"Kalkulus" added as s-1`)

	_, err = runCLI(t, db, "add", "-n", "Fisika", "-c", "3", "-g", "3.7")
	require.NoError(t, err)
	out, err = runCLI(t, db, "add", "-n", "Kimia", "-c", "3", "-g", "3.3")
	require.NoError(t, err)
	assert.Contains(t, out, "s-3")

	out, err = runCLI(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, rowWith(t, out, "ID"), "SUBJECT")
	fisika := rowWith(t, out, "Fisika")
	assert.Contains(t, fisika, "s-2")
	assert.Contains(t, fisika, "A- (3.70)")
	assert.Contains(t, fisika, "│")

	out, err = runCLI(t, db, "compute")
	require.NoError(t, err)
	assert.Contains(t, out, "GPA 3.70")
	assert.Contains(t, out, "MAGNA CUM LAUDE")
	assert.Contains(t, out, "37.00")

	out, err = runCLI(t, db, "remove", "s-2")
	require.NoError(t, err)
	assert.Contains(t, out, `"Fisika" removed`)

	out, err = runCLI(t, db, "remove", "s-9")
	require.NoError(t, err)
	assert.Contains(t, out, "no subject with id s-9")

	out, err = runCLI(t, db, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Fisika")
	assert.Contains(t, rowWith(t, out, "Kimia"), "s-2") // Kimia moved up
}

func TestCLIRejectsInvalidSubject(t *testing.T) {
	db := filepath.Join(t.TempDir(), "gpa.db")

	_, err := runCLI(t, db, "add", "--name", "Kalkulus", "--credit", "9", "--grade", "4")
	assert.Error(t, err)

	_, err = runCLI(t, db, "compute")
	assert.EqualError(t, err, "add at least one subject first")
}

func TestRenderSubjectsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSubjects(&buf, nil))
	assert.Contains(t, buf.String(), "No subjects yet")
}

func TestGradeLabel(t *testing.T) {
	onScale := models.SubjectRecord{GradeValue: decimal.RequireFromString("2.3"), LetterGrade: "C+"}
	offScale := models.SubjectRecord{GradeValue: decimal.RequireFromString("3.85")}

	assert.Equal(t, "C+ (2.30)", gradeLabel(onScale))
	assert.Equal(t, "3.85", gradeLabel(offScale))
}

func TestRenderReference(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderReference(&buf))

	out := buf.String()
	assert.Contains(t, rowWith(t, out, "LETTER"), "VALUE")
	assert.Contains(t, rowWith(t, out, "RANGE"), "STATUS")
	assert.Contains(t, rowWith(t, out, "3.85 - 4.00"), "SUMMA CUM LAUDE")
	assert.Contains(t, rowWith(t, out, "A-"), "3.70")
	assert.Equal(t, 11, strings.Count(out, " - "))
}

func TestRenderSubjectsTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSubjects(&buf, []models.SubjectRecord{
		{ID: "s-1", Name: "Statistika", Credit: 2, GradeValue: decimal.RequireFromString("3.85")},
	}))

	out := buf.String()
	row := rowWith(t, out, "Statistika")
	assert.Contains(t, row, "s-1")
	assert.Contains(t, row, "3.85")
	assert.Contains(t, out, "╭")
}

// rowWith returns the first output line containing s.
func rowWith(t *testing.T, out, s string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, s) {
			return line
		}
	}
	t.Fatalf("no line contains %q in:\n%s", s, out)
	return ""
}
