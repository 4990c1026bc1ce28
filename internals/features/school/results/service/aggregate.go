// Package service holds the derived-value computations over result rows.
// They are pure functions over already-fetched rows so they can be unit
// tested without a database; controllers feed them query results.
package service

import (
	"math"
)

// ScoredRow is the flat projection the aggregates consume: one result row
// with its term label, subject name, and optional numeric score.
type ScoredRow struct {
	TermExamName string
	SubjectName  string
	Score        *float64
}

// TermAverage is the per-term mean plus how many scores contributed.
type TermAverage struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Round1 rounds to one decimal place, half away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// AverageScore is the mean of all non-null scores, rounded to one decimal.
// ok is false when no row carries a score — "no data", which is distinct
// from an average of zero.
func AverageScore(rows []ScoredRow) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, r := range rows {
		if r.Score == nil {
			continue
		}
		sum += *r.Score
		n++
	}
	if n == 0 {
		return 0, false
	}
	return Round1(sum / float64(n)), true
}

// TermAverages groups scored rows by term/exam name and averages each group.
// Rows without a score never contribute, so every returned group has a
// positive count.
func TermAverages(rows []ScoredRow) map[string]TermAverage {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range rows {
		if r.Score == nil {
			continue
		}
		sums[r.TermExamName] += *r.Score
		counts[r.TermExamName]++
	}

	out := make(map[string]TermAverage, len(sums))
	for term, sum := range sums {
		out[term] = TermAverage{
			Average: Round1(sum / float64(counts[term])),
			Count:   counts[term],
		}
	}
	return out
}

// TermSubjectAverages builds the two-level mapping term → subject → rounded
// average over scored rows. Callers select the rows: for class-level
// averages that selection keys on each student's CURRENT class, not the
// class snapshot stored on the result.
func TermSubjectAverages(rows []ScoredRow) map[string]map[string]float64 {
	type key struct{ term, subject string }
	sums := map[key]float64{}
	counts := map[key]int{}
	for _, r := range rows {
		if r.Score == nil {
			continue
		}
		k := key{r.TermExamName, r.SubjectName}
		sums[k] += *r.Score
		counts[k]++
	}

	out := map[string]map[string]float64{}
	for k, sum := range sums {
		if _, found := out[k.term]; !found {
			out[k.term] = map[string]float64{}
		}
		out[k.term][k.subject] = Round1(sum / float64(counts[k]))
	}
	return out
}
