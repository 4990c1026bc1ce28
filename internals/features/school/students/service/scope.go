package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	m "schoolhub_backend/internals/features/school/students/model"
)

// IsParentOf reports whether the user is linked to the student as a
// parent/guardian.
func IsParentOf(db *gorm.DB, parentUserID, studentID uuid.UUID) (bool, error) {
	var link m.StudentParentModel
	err := db.Select("student_parent_id").
		Where("student_parent_parent_user_id = ? AND student_parent_student_id = ?", parentUserID, studentID).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChildrenOf returns the students linked to a parent, ordered by name.
func ChildrenOf(db *gorm.DB, parentUserID uuid.UUID) ([]m.StudentModel, error) {
	var students []m.StudentModel
	err := db.
		Joins("JOIN student_parents ON student_parents.student_parent_student_id = students.student_id").
		Where("student_parents.student_parent_parent_user_id = ?", parentUserID).
		Preload("CurrentClass").
		Order("students.student_last_name asc, students.student_first_name asc").
		Find(&students).Error
	return students, err
}
