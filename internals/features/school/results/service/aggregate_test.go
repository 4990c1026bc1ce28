package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestAverageScoreNoData(t *testing.T) {
	// no rows at all
	avg, ok := AverageScore(nil)
	assert.False(t, ok)
	assert.Zero(t, avg)

	// rows exist but none carries a score: still "no data", not zero
	rows := []ScoredRow{
		{TermExamName: "Term 1", SubjectName: "Math", Score: nil},
		{TermExamName: "Term 1", SubjectName: "English", Score: nil},
	}
	avg, ok = AverageScore(rows)
	assert.False(t, ok)
	assert.Zero(t, avg)
}

func TestAverageScore(t *testing.T) {
	rows := []ScoredRow{
		{TermExamName: "Term 1", SubjectName: "Math", Score: fp(80)},
		{TermExamName: "Term 1", SubjectName: "English", Score: fp(90)},
		{TermExamName: "Term 2", SubjectName: "Math", Score: nil}, // ignored
	}
	avg, ok := AverageScore(rows)
	require.True(t, ok)
	assert.Equal(t, 85.0, avg)
}

func TestAverageScoreRounding(t *testing.T) {
	rows := []ScoredRow{
		{TermExamName: "T", SubjectName: "A", Score: fp(70)},
		{TermExamName: "T", SubjectName: "B", Score: fp(71)},
		{TermExamName: "T", SubjectName: "C", Score: fp(71)},
	}
	avg, ok := AverageScore(rows)
	require.True(t, ok)
	assert.Equal(t, 70.7, avg) // 212/3 = 70.666...
}

func TestTermAverages(t *testing.T) {
	rows := []ScoredRow{
		{TermExamName: "Term 1", SubjectName: "Math", Score: fp(80)},
		{TermExamName: "Term 1", SubjectName: "English", Score: fp(90)},
		{TermExamName: "Term 2", SubjectName: "Math", Score: fp(60)},
		{TermExamName: "Term 2", SubjectName: "English", Score: nil}, // ignored
	}

	got := TermAverages(rows)
	require.Len(t, got, 2)
	assert.Equal(t, TermAverage{Average: 85.0, Count: 2}, got["Term 1"])
	assert.Equal(t, TermAverage{Average: 60.0, Count: 1}, got["Term 2"])
}

func TestTermAveragesEmpty(t *testing.T) {
	got := TermAverages([]ScoredRow{{TermExamName: "Term 1", Score: nil}})
	assert.Empty(t, got)
}

func TestTermSubjectAverages(t *testing.T) {
	// two students in the same class, same term and subject: 70 and 90
	rows := []ScoredRow{
		{TermExamName: "Term 1", SubjectName: "Math", Score: fp(70)},
		{TermExamName: "Term 1", SubjectName: "Math", Score: fp(90)},
		{TermExamName: "Term 1", SubjectName: "English", Score: fp(55)},
		{TermExamName: "Term 2", SubjectName: "Math", Score: fp(65)},
	}

	got := TermSubjectAverages(rows)
	require.Len(t, got, 2)
	assert.Equal(t, 80.0, got["Term 1"]["Math"])
	assert.Equal(t, 55.0, got["Term 1"]["English"])
	assert.Equal(t, 65.0, got["Term 2"]["Math"])
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 85.5, Round1(85.45))
	assert.Equal(t, 85.4, Round1(85.44))
	assert.Equal(t, -1.5, Round1(-1.45))
}
