package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fp(v float64) *float64 { return &v }

func TestCreateResultRequestScoreBounds(t *testing.T) {
	validate := validator.New()

	base := CreateResultRequest{
		SubjectID:    uuid.New(),
		TermExamName: "Term 1",
	}

	req := base
	req.Score = fp(85)
	assert.NoError(t, validate.Struct(req))

	req = base
	req.Score = fp(0)
	assert.NoError(t, validate.Struct(req))

	req = base
	req.Score = fp(100)
	assert.NoError(t, validate.Struct(req))

	req = base
	req.Score = fp(101)
	assert.Error(t, validate.Struct(req))

	req = base
	req.Score = fp(-1)
	assert.Error(t, validate.Struct(req))

	// score is optional: grade-only entries are fine
	req = base
	req.Grade = "A"
	assert.NoError(t, validate.Struct(req))
}

func TestUpdateResultRequestApply(t *testing.T) {
	req := CreateResultRequest{
		SubjectID:    uuid.New(),
		TermExamName: " Term 1 ",
		Score:        fp(72),
		Grade:        " B ",
	}
	req.Normalize()
	assert.Equal(t, "Term 1", req.TermExamName)
	assert.Equal(t, "B", req.Grade)

	mo := req.ToModel(uuid.New(), uuid.New())
	require.NotNil(t, mo.ResultScore)
	assert.Equal(t, 72.0, *mo.ResultScore)
	require.NotNil(t, mo.ResultRecordedByUserID)

	upd := UpdateResultRequest{ClearScore: true, Grade: strPtr("A")}
	upd.Apply(&mo)
	assert.Nil(t, mo.ResultScore)
	assert.Equal(t, "A", mo.ResultGrade)
}

func strPtr(s string) *string { return &s }
