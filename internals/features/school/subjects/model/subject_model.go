package model

import (
	"time"

	"github.com/google/uuid"
)

type SubjectModel struct {
	SubjectID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:subject_id" json:"subject_id"`
	SubjectName string    `gorm:"size:100;uniqueIndex;not null;column:subject_name" json:"subject_name"`

	SubjectCreatedAt time.Time `gorm:"autoCreateTime;column:subject_created_at" json:"subject_created_at"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
