package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"
)

/* =========================
   CSV export builders
========================= */

// ExportRow is one flattened result row ready for CSV, assembled by the
// controller from the preloaded associations.
type ExportRow struct {
	StudentNumber string
	StudentName   string
	ClassName     string
	Subject       string
	TermExam      string
	Score         *float64
	Grade         string
	Comments      string
	DateRecorded  time.Time
	RecordedBy    string
}

// "Date Recorded" carries the recording time, not just the date.
const recordedAtLayout = "2006-01-02 15:04"

// Column layouts are fixed; consumers key on position, not header text.
var (
	ClassExportHeader = []string{
		"Student ID", "Student Name", "Subject", "Term/Exam",
		"Score", "Grade", "Comments", "Date Recorded", "Recorded By",
	}
	ParentExportHeader = []string{
		"Child Name", "Child Student ID", "Class", "Subject", "Term/Exam",
		"Score", "Grade", "Comments", "Date Recorded",
	}
)

// BuildClassExport renders one class's results as CSV bytes.
func BuildClassExport(rows []ExportRow) ([]byte, error) {
	return writeCSV(ClassExportHeader, rows, func(r ExportRow) []string {
		return []string{
			r.StudentNumber, r.StudentName, r.Subject, r.TermExam,
			formatScore(r.Score), r.Grade, r.Comments,
			r.DateRecorded.Format(recordedAtLayout), r.RecordedBy,
		}
	})
}

// BuildParentExport renders all of a parent's children's results as CSV bytes.
func BuildParentExport(rows []ExportRow) ([]byte, error) {
	return writeCSV(ParentExportHeader, rows, func(r ExportRow) []string {
		return []string{
			r.StudentName, r.StudentNumber, r.ClassName, r.Subject, r.TermExam,
			formatScore(r.Score), r.Grade, r.Comments,
			r.DateRecorded.Format(recordedAtLayout),
		}
	})
}

// ClassExportFilename embeds the class name and year, e.g.
// "results_Primary 4_2025-2026.csv".
func ClassExportFilename(className, academicYear string) string {
	return fmt.Sprintf("results_%s_%s.csv", className, academicYear)
}

// ParentExportFilename embeds the requesting parent's username.
func ParentExportFilename(userName string) string {
	return fmt.Sprintf("results_children_of_%s.csv", userName)
}

func writeCSV(header []string, rows []ExportRow, render func(ExportRow) []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(render(r)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatScore(score *float64) string {
	if score == nil {
		return ""
	}
	return strconv.FormatFloat(*score, 'f', -1, 64)
}
