package dto

import (
	"strings"

	m "schoolhub_backend/internals/features/school/subjects/model"
)

type CreateSubjectRequest struct {
	Name string `json:"subject_name" validate:"required,min=1,max=100"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateSubjectRequest) ToModel() m.SubjectModel {
	return m.SubjectModel{SubjectName: r.Name}
}

type UpdateSubjectRequest struct {
	Name *string `json:"subject_name" validate:"omitempty,min=1,max=100"`
}

func (r UpdateSubjectRequest) Apply(mo *m.SubjectModel) {
	if r.Name != nil {
		mo.SubjectName = strings.TrimSpace(*r.Name)
	}
}
