package service

import "schoolhub_backend/internals/features/school/attendance/model"

/* =========================
   Summary counts
========================= */

// StatusCounts tallies attendance records by status.
type StatusCounts struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
	Excused int `json:"excused"`
}

func (s StatusCounts) Total() int {
	return s.Present + s.Absent + s.Late + s.Excused
}

// CountStatuses tallies the given records.
func CountStatuses(records []model.AttendanceRecordModel) StatusCounts {
	var c StatusCounts
	for _, rec := range records {
		switch rec.AttendanceRecordStatus {
		case model.AttendancePresent:
			c.Present++
		case model.AttendanceAbsent:
			c.Absent++
		case model.AttendanceLate:
			c.Late++
		case model.AttendanceExcused:
			c.Excused++
		}
	}
	return c
}

// NotRecorded reports how many of rosterSize students have no record yet.
// Never negative, even if stale records outnumber the current roster.
func NotRecorded(rosterSize, recorded int) int {
	n := rosterSize - recorded
	if n < 0 {
		return 0
	}
	return n
}
