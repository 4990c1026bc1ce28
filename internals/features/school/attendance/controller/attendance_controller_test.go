package controller

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newAttendanceTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	ctrl := NewAttendanceController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("role", "staff")
		return c.Next()
	})
	app.Get("/class/:id/attendance/view", ctrl.ViewClassAttendance)
	return app, mock
}

func TestViewClassAttendanceCoversDateRange(t *testing.T) {
	app, mock := newAttendanceTestApp(t)
	classID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "school_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_class_id", "school_class_name"}).
			AddRow(classID.String(), "Primary 4"))
	mock.ExpectQuery(`FROM "attendance_records" JOIN students .* BETWEEN`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"attendance_record_id", "attendance_record_student_id",
				"attendance_record_date", "attendance_record_status"}).
			AddRow(uuid.New().String(), uuid.New().String(),
				time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), "PRESENT").
			AddRow(uuid.New().String(), uuid.New().String(),
				time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), "ABSENT"))
	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}))

	req := httptest.NewRequest(fiber.MethodGet,
		"/class/"+classID.String()+"/attendance/view?start_date=2026-03-01&end_date=2026-03-31", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
			Summary   struct {
				Present int `json:"present"`
				Absent  int `json:"absent"`
			} `json:"summary"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "2026-03-01", body.Data.StartDate)
	assert.Equal(t, "2026-03-31", body.Data.EndDate)
	assert.Equal(t, 1, body.Data.Summary.Present)
	assert.Equal(t, 1, body.Data.Summary.Absent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestViewClassAttendanceDefaultsToToday(t *testing.T) {
	app, mock := newAttendanceTestApp(t)
	classID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "school_classes"`).
		WillReturnRows(sqlmock.NewRows([]string{"school_class_id", "school_class_name"}).
			AddRow(classID.String(), "Primary 4"))
	mock.ExpectQuery(`FROM "attendance_records" JOIN students .* BETWEEN`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"attendance_record_id", "attendance_record_student_id",
				"attendance_record_date", "attendance_record_status"}))

	req := httptest.NewRequest(fiber.MethodGet,
		"/class/"+classID.String()+"/attendance/view", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			StartDate string `json:"start_date"`
			EndDate   string `json:"end_date"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, body.Data.StartDate)
	assert.Equal(t, today, body.Data.EndDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}
