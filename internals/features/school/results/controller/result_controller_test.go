package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newResultTestApp wires the controller against a mocked connection with the
// same TranslateError setting the real pool uses, so unique-index violations
// surface as gorm.ErrDuplicatedKey exactly like in production.
func newResultTestApp(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	ctrl := NewResultController(db)
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", uuid.New().String())
		c.Locals("role", "staff")
		c.Locals("user_name", "admin")
		return c.Next()
	})
	app.Post("/student/:studentId/result/add", ctrl.Add)
	app.Post("/result/:id/edit", ctrl.Edit)
	return app, mock
}

func uniqueTermViolation() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: "uq_results_student_subject_term"}
}

func TestAddResultDuplicateTermReturnsConflict(t *testing.T) {
	app, mock := newResultTestApp(t)
	studentID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}).AddRow(studentID.String()))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "results"`).
		WillReturnError(uniqueTermViolation())
	mock.ExpectRollback()

	body := fmt.Sprintf(`{"result_subject_id":%q,"result_term_exam_name":"Term 1","result_score":85}`,
		uuid.New())
	req := httptest.NewRequest(fiber.MethodPost,
		"/student/"+studentID.String()+"/result/add", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEditResultDuplicateTermReturnsConflict(t *testing.T) {
	app, mock := newResultTestApp(t)
	resultID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "results"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"result_id", "result_student_id", "result_subject_id", "result_term_exam_name"}).
			AddRow(resultID.String(), uuid.New().String(), uuid.New().String(), "Term 1"))
	mock.ExpectQuery(`SELECT .* FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"student_id"}))
	mock.ExpectQuery(`SELECT .* FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"subject_id"}))
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "results"`).
		WillReturnError(uniqueTermViolation())
	mock.ExpectRollback()

	body := `{"result_term_exam_name":"Term 2"}`
	req := httptest.NewRequest(fiber.MethodPost,
		"/result/"+resultID.String()+"/edit", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
