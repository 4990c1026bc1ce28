package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/school/attendance/model"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestBuildPlanCreatesForNewStudents(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	classID, recorder := uuid.New(), uuid.New()
	roster := map[uuid.UUID]bool{s1: true, s2: true}
	date := day(t, "2026-03-02")

	entries := []SubmittedEntry{
		{StudentID: s1, Status: "PRESENT"},
		{StudentID: s2, Status: "ABSENT", Notes: "sick"},
	}

	plan := BuildPlan(entries, nil, roster, classID, date, recorder)
	require.Len(t, plan.Creates, 2)
	assert.Empty(t, plan.Updates)
	assert.Zero(t, plan.Skipped)

	first := plan.Creates[0]
	assert.Equal(t, s1, first.AttendanceRecordStudentID)
	assert.Equal(t, model.AttendancePresent, first.AttendanceRecordStatus)
	require.NotNil(t, first.AttendanceRecordClassID)
	assert.Equal(t, classID, *first.AttendanceRecordClassID)
	require.NotNil(t, first.AttendanceRecordRecordedByUserID)
	assert.Equal(t, recorder, *first.AttendanceRecordRecordedByUserID)

	assert.Equal(t, "sick", plan.Creates[1].AttendanceRecordNotes)
}

func TestBuildPlanSkipsBlankAndOffRoster(t *testing.T) {
	onRoster, offRoster := uuid.New(), uuid.New()
	roster := map[uuid.UUID]bool{onRoster: true}

	entries := []SubmittedEntry{
		{StudentID: onRoster, Status: ""},            // left blank
		{StudentID: onRoster, Status: "NAPPING"},     // not a status
		{StudentID: offRoster, Status: "PRESENT"},    // not in this class
	}

	plan := BuildPlan(entries, nil, roster, uuid.New(), day(t, "2026-03-02"), uuid.New())
	assert.True(t, plan.Empty())
	assert.Equal(t, 3, plan.Skipped)
}

func TestBuildPlanUpdatesOnlyChangedRows(t *testing.T) {
	s1, s2 := uuid.New(), uuid.New()
	roster := map[uuid.UUID]bool{s1: true, s2: true}
	date := day(t, "2026-03-02")
	recorder := uuid.New()

	existing := []model.AttendanceRecordModel{
		{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordStudentID: s1,
			AttendanceRecordDate:      date,
			AttendanceRecordStatus:    model.AttendancePresent,
		},
		{
			AttendanceRecordID:        uuid.New(),
			AttendanceRecordStudentID: s2,
			AttendanceRecordDate:      date,
			AttendanceRecordStatus:    model.AttendanceAbsent,
			AttendanceRecordNotes:     "sick",
		},
	}

	entries := []SubmittedEntry{
		{StudentID: s1, Status: "LATE", Notes: "bus"},    // changed
		{StudentID: s2, Status: "ABSENT", Notes: "sick"}, // unchanged
	}

	plan := BuildPlan(entries, existing, roster, uuid.New(), date, recorder)
	assert.Empty(t, plan.Creates)
	require.Len(t, plan.Updates, 1)
	assert.Equal(t, 1, plan.Skipped)

	upd := plan.Updates[0]
	assert.Equal(t, existing[0].AttendanceRecordID, upd.AttendanceRecordID)
	assert.Equal(t, model.AttendanceLate, upd.AttendanceRecordStatus)
	assert.Equal(t, "bus", upd.AttendanceRecordNotes)
	require.NotNil(t, upd.AttendanceRecordRecordedByUserID)
	assert.Equal(t, recorder, *upd.AttendanceRecordRecordedByUserID)
}

func TestBuildPlanIdempotent(t *testing.T) {
	s1 := uuid.New()
	roster := map[uuid.UUID]bool{s1: true}
	date := day(t, "2026-03-02")

	entries := []SubmittedEntry{{StudentID: s1, Status: "EXCUSED", Notes: "trip"}}

	first := BuildPlan(entries, nil, roster, uuid.New(), date, uuid.New())
	require.Len(t, first.Creates, 1)

	// pretend the first plan was applied, then resubmit the same sheet
	stored := first.Creates[0]
	stored.AttendanceRecordID = uuid.New()
	second := BuildPlan(entries, []model.AttendanceRecordModel{stored}, roster, uuid.New(), date, uuid.New())
	assert.True(t, second.Empty())
	assert.Equal(t, 1, second.Skipped)
}

func TestCountStatuses(t *testing.T) {
	records := []model.AttendanceRecordModel{
		{AttendanceRecordStatus: model.AttendancePresent},
		{AttendanceRecordStatus: model.AttendancePresent},
		{AttendanceRecordStatus: model.AttendanceLate},
		{AttendanceRecordStatus: model.AttendanceExcused},
	}
	c := CountStatuses(records)
	assert.Equal(t, StatusCounts{Present: 2, Absent: 0, Late: 1, Excused: 1}, c)
	assert.Equal(t, 4, c.Total())
}

func TestNotRecorded(t *testing.T) {
	assert.Equal(t, 3, NotRecorded(10, 7))
	assert.Equal(t, 0, NotRecorded(5, 5))
	assert.Equal(t, 0, NotRecorded(4, 9))
}
