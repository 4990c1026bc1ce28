package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"

	classModel "schoolhub_backend/internals/features/school/classes/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
)

func TestExportRowsUseClassAtGradingTime(t *testing.T) {
	gradedIn := &classModel.SchoolClassModel{
		SchoolClassID:   uuid.New(),
		SchoolClassName: "Primary 3",
	}
	movedTo := &classModel.SchoolClassModel{
		SchoolClassID:   uuid.New(),
		SchoolClassName: "Primary 4",
	}

	rows := exportRowsFromModels([]resultModel.ResultModel{{
		ResultTermExamName: "Term 1",
		Class:              gradedIn,
		Student: &studentModel.StudentModel{
			StudentNumber:    "STU-001",
			StudentFirstName: "Abel",
			StudentLastName:  "Kim",
			CurrentClass:     movedTo,
		},
	}})

	// a transfer after grading must not rewrite exported history
	assert.Equal(t, "Primary 3", rows[0].ClassName)
}

func TestExportRowsFallBackToClassSnapshot(t *testing.T) {
	rows := exportRowsFromModels([]resultModel.ResultModel{{
		ResultTermExamName: "Term 2",
		ResultClassSnapshot: datatypes.JSONMap{
			"school_class_name": "Primary 2",
		},
	}})
	assert.Equal(t, "Primary 2", rows[0].ClassName)
}

func TestExportRowsWithoutClassOrRecorderRenderNA(t *testing.T) {
	rows := exportRowsFromModels([]resultModel.ResultModel{{
		ResultTermExamName: "Term 1",
	}})
	assert.Equal(t, "N/A", rows[0].ClassName)
	assert.Equal(t, "N/A", rows[0].RecordedBy)
}
