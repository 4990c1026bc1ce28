package service

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportRows() []ExportRow {
	recorded := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []ExportRow{
		{
			StudentNumber: "STU-001",
			StudentName:   "Abel Kim",
			ClassName:     "Primary 4",
			Subject:       "Math",
			TermExam:      "Term 1",
			Score:         fp(87.5),
			Grade:         "B+",
			Comments:      "steady",
			DateRecorded:  recorded,
			RecordedBy:    "t.mensah",
		},
		{
			StudentNumber: "STU-002",
			StudentName:   "Bola Ade",
			ClassName:     "Primary 4",
			Subject:       "Math",
			TermExam:      "Term 1",
			Score:         nil, // grade only
			Grade:         "A",
			DateRecorded:  recorded,
			RecordedBy:    "t.mensah",
		},
	}
}

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	return records
}

func TestBuildClassExport(t *testing.T) {
	data, err := BuildClassExport(exportRows())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3) // header + 2 rows
	assert.Equal(t, ClassExportHeader, records[0])
	assert.Equal(t, []string{
		"STU-001", "Abel Kim", "Math", "Term 1",
		"87.5", "B+", "steady", "2026-03-02 10:00", "t.mensah",
	}, records[1])
	assert.Equal(t, "", records[2][4]) // nil score renders empty
	assert.Equal(t, "A", records[2][5])
}

func TestBuildParentExport(t *testing.T) {
	data, err := BuildParentExport(exportRows())
	require.NoError(t, err)

	records := parseCSV(t, data)
	require.Len(t, records, 3)
	assert.Equal(t, ParentExportHeader, records[0])
	assert.Equal(t, []string{
		"Abel Kim", "STU-001", "Primary 4", "Math", "Term 1",
		"87.5", "B+", "steady", "2026-03-02 10:00",
	}, records[1])
}

func TestExportFilenames(t *testing.T) {
	assert.Equal(t, "results_Primary 4_2025-2026.csv", ClassExportFilename("Primary 4", "2025-2026"))
	assert.Equal(t, "results_children_of_mama_bola.csv", ParentExportFilename("mama_bola"))
}
