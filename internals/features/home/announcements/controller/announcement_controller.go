package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	announcementDTO "schoolhub_backend/internals/features/home/announcements/dto"
	announcementModel "schoolhub_backend/internals/features/home/announcements/model"
	announcementService "schoolhub_backend/internals/features/home/announcements/service"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// GET /api/announcements?page=
// Anonymous callers see untargeted announcements only; signed-in callers
// also see the ones targeting their role.
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 3, 50)

	q := h.DB.Model(&announcementModel.AnnouncementModel{}).
		Scopes(announcementService.VisibleTo(helper.GetRoleFromToken(c)))

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}
	paging = helper.ClampPaging(paging, total)

	var announcements []announcementModel.AnnouncementModel
	if err := q.Preload("PostedBy").
		Order("announcement_timestamp desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&announcements).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load announcements")
	}

	return helper.JsonList(c, "OK",
		announcementDTO.FromAnnouncementModels(announcements),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req announcementDTO.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	postedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	announcement := req.ToModel(postedBy)
	if err := h.DB.Create(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}
	return helper.JsonCreated(c, "Announcement posted",
		announcementDTO.FromAnnouncementModel(announcement))
}

// PUT /api/admin/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var announcement announcementModel.AnnouncementModel
	if err := h.DB.First(&announcement, "announcement_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Announcement not found")
	}

	var req announcementDTO.UpdateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&announcement)
	if err := h.DB.Save(&announcement).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}
	return helper.JsonUpdated(c, "Announcement updated",
		announcementDTO.FromAnnouncementModel(announcement))
}

// DELETE /api/admin/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid announcement id")
	}
	if err := h.DB.Delete(&announcementModel.AnnouncementModel{}, "announcement_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	return helper.JsonDeleted(c, "Announcement deleted", fiber.Map{"announcement_id": id})
}
