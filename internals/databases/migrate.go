package database

import (
	"log"

	announcementModel "schoolhub_backend/internals/features/home/announcements/model"
	carouselModel "schoolhub_backend/internals/features/home/carousel/model"
	newsModel "schoolhub_backend/internals/features/home/news/model"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// Migrate creates/updates the schema. Order matters: referenced tables first.
func Migrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("pgcrypto extension: %v", err)
	}

	err := DB.AutoMigrate(
		&userModel.UserModel{},
		&userModel.TeacherProfileModel{},
		&userModel.ParentProfileModel{},
		&classModel.SchoolClassModel{},
		&subjectModel.SubjectModel{},
		&studentModel.StudentModel{},
		&studentModel.StudentParentModel{},
		&resultModel.ResultModel{},
		&attendanceModel.AttendanceRecordModel{},
		&announcementModel.AnnouncementModel{},
		&newsModel.NewsArticleModel{},
		&newsModel.NewsImageModel{},
		&carouselModel.CarouselImageModel{},
	)
	if err != nil {
		log.Fatalf("auto migrate: %v", err)
	}
	log.Println("schema migrated")
}
