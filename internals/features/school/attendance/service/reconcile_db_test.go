package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/attendance/model"
)

func openMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func duplicateDayViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_student_date"}
}

func planRecord(date time.Time) model.AttendanceRecordModel {
	cid := uuid.New()
	rid := uuid.New()
	return model.AttendanceRecordModel{
		AttendanceRecordStudentID:        uuid.New(),
		AttendanceRecordDate:             date,
		AttendanceRecordStatus:           model.AttendancePresent,
		AttendanceRecordClassID:          &cid,
		AttendanceRecordRecordedByUserID: &rid,
	}
}

func TestApplyPlanRollsBackWhenInsertHitsDuplicateDay(t *testing.T) {
	db, mock := openMockDB(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	plan := Plan{Creates: []model.AttendanceRecordModel{
		planRecord(date), planRecord(date),
	}}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_records"`).
		WillReturnError(duplicateDayViolation())
	mock.ExpectRollback()

	err := ApplyPlan(db, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPlanRollsBackWholeBatchWhenUpdateFails(t *testing.T) {
	db, mock := openMockDB(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	update := planRecord(date)
	update.AttendanceRecordID = uuid.New()
	plan := Plan{
		Creates: []model.AttendanceRecordModel{planRecord(date)},
		Updates: []model.AttendanceRecordModel{update},
	}

	// the insert succeeds; the later failure must still discard it
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_record_id"}).
			AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "attendance_records"`).
		WillReturnError(duplicateDayViolation())
	mock.ExpectRollback()

	err := ApplyPlan(db, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyPlanCommitsCreatesAndUpdatesTogether(t *testing.T) {
	db, mock := openMockDB(t)
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	update := planRecord(date)
	update.AttendanceRecordID = uuid.New()
	plan := Plan{
		Creates: []model.AttendanceRecordModel{planRecord(date)},
		Updates: []model.AttendanceRecordModel{update},
	}

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "attendance_records"`).
		WillReturnRows(sqlmock.NewRows([]string{"attendance_record_id"}).
			AddRow(uuid.New().String()))
	mock.ExpectExec(`UPDATE "attendance_records"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, ApplyPlan(db, plan))
	assert.NoError(t, mock.ExpectationsWereMet())
}
