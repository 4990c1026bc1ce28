package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	announcementDTO "schoolhub_backend/internals/features/home/announcements/dto"
	announcementModel "schoolhub_backend/internals/features/home/announcements/model"
	announcementService "schoolhub_backend/internals/features/home/announcements/service"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	attendanceService "schoolhub_backend/internals/features/school/attendance/service"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	resultDTO "schoolhub_backend/internals/features/school/results/dto"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	studentDTO "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	studentService "schoolhub_backend/internals/features/school/students/service"
	helper "schoolhub_backend/internals/helpers"
)

// Parent dashboards summarize attendance over the last two weeks.
const parentSummaryDays = 14

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard
// Sends every signed-in user to the landing spot for their role.
func (h *DashboardController) Dispatch(c *fiber.Ctx) error {
	role := helper.GetRoleFromToken(c)
	if role == constants.RoleUnassigned {
		return helper.RedirectWithFlash(c, "/",
			"Your account has no role assigned yet; contact the school office")
	}
	return c.Redirect(constants.DashboardPath(role), fiber.StatusSeeOther)
}

// GET /api/parent/dashboard
// The caller's children, each with a recent attendance summary and their
// latest results.
func (h *DashboardController) ParentDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	children, err := studentService.ChildrenOf(h.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load children")
	}

	end := helper.Today()
	start := end.AddDate(0, 0, -parentSummaryDays)

	type childCard struct {
		Student           studentDTO.StudentResponse    `json:"student"`
		AttendanceSummary attendanceService.StatusCounts `json:"attendance_summary"`
		RecentResults     []resultDTO.ResultResponse    `json:"recent_results"`
	}

	cards := make([]childCard, 0, len(children))
	for i := range children {
		child := children[i]

		var records []attendanceModel.AttendanceRecordModel
		if err := h.DB.
			Where("attendance_record_student_id = ? AND attendance_record_date BETWEEN ? AND ?",
				child.StudentID, start, end).
			Find(&records).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
		}

		var results []resultModel.ResultModel
		if err := h.DB.Preload("Subject").
			Where("result_student_id = ?", child.StudentID).
			Order("result_created_at desc").
			Limit(5).
			Find(&results).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
		}

		cards = append(cards, childCard{
			Student:           studentDTO.FromStudentModel(child),
			AttendanceSummary: attendanceService.CountStatuses(records),
			RecentResults:     resultDTO.FromResultModels(results),
		})
	}

	announcements, pagination, err := h.announcementsFor(c, constants.RoleParent)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"summary_start":            start.Format(helper.DateOnly),
		"summary_end":              end.Format(helper.DateOnly),
		"children":                 cards,
		"announcements":            announcements,
		"announcements_pagination": pagination,
	})
}

func (h *DashboardController) announcementsFor(c *fiber.Ctx, role string) ([]announcementDTO.AnnouncementResponse, helper.Pagination, error) {
	paging := helper.ResolvePaging(c, 5, 20)

	q := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Scopes(announcementService.VisibleTo(role))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, helper.Pagination{}, err
	}
	paging = helper.ClampPaging(paging, total)

	var announcements []announcementModel.AnnouncementModel
	if err := q.Preload("PostedBy").
		Order("announcement_timestamp desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&announcements).Error; err != nil {
		return nil, helper.Pagination{}, err
	}

	return announcementDTO.FromAnnouncementModels(announcements),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage), nil
}

// GET /api/teacher/dashboard
// The caller's classes with today's attendance status per class.
func (h *DashboardController) TeacherDashboard(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var classes []classModel.SchoolClassModel
	if err := h.DB.Where("school_class_teacher_user_id = ?", userID).
		Order("school_class_academic_year desc, school_class_name asc").
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}

	today := helper.Today()

	type classCard struct {
		Class        classModel.SchoolClassModel    `json:"class"`
		StudentCount int                            `json:"student_count"`
		TodaySummary attendanceService.StatusCounts `json:"today_summary"`
		NotRecorded  int                            `json:"not_recorded"`
	}

	cards := make([]classCard, 0, len(classes))
	for i := range classes {
		class := classes[i]

		var roster []studentModel.StudentModel
		if err := h.DB.Select("student_id").
			Where("student_class_id = ?", class.SchoolClassID).
			Find(&roster).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roster")
		}

		var records []attendanceModel.AttendanceRecordModel
		if len(roster) > 0 {
			ids := make([]interface{}, 0, len(roster))
			for _, s := range roster {
				ids = append(ids, s.StudentID)
			}
			if err := h.DB.
				Where("attendance_record_student_id IN ? AND attendance_record_date = ?", ids, today).
				Find(&records).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
			}
		}

		summary := attendanceService.CountStatuses(records)
		cards = append(cards, classCard{
			Class:        class,
			StudentCount: len(roster),
			TodaySummary: summary,
			NotRecorded:  attendanceService.NotRecorded(len(roster), summary.Total()),
		})
	}

	announcements, pagination, err := h.announcementsFor(c, constants.RoleTeacher)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"date":                     today.Format(helper.DateOnly),
		"classes":                  cards,
		"announcements":            announcements,
		"announcements_pagination": pagination,
	})
}
