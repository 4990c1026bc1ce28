package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	carouselDTO "schoolhub_backend/internals/features/home/carousel/dto"
	carouselModel "schoolhub_backend/internals/features/home/carousel/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type CarouselController struct {
	DB *gorm.DB
}

func NewCarouselController(db *gorm.DB) *CarouselController {
	return &CarouselController{DB: db}
}

// GET /api/admin/carousel
// Admin view: every banner including inactive ones.
func (h *CarouselController) List(c *fiber.Ctx) error {
	var images []carouselModel.CarouselImageModel
	if err := h.DB.
		Order("carousel_image_order asc, carousel_image_title asc").
		Find(&images).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load carousel")
	}
	return helper.JsonOK(c, "OK", carouselDTO.FromCarouselImageModels(images))
}

// POST /api/admin/carousel (multipart: fields + "image")
func (h *CarouselController) Create(c *fiber.Ctx) error {
	var req carouselDTO.CreateCarouselImageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing image file")
	}
	relPath, err := helper.SaveUploadedImage("carousel", fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the image")
	}

	image := req.ToModel(relPath)
	if err := h.DB.Create(&image).Error; err != nil {
		_ = helper.RemoveMediaFile(relPath)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create banner")
	}
	return helper.JsonCreated(c, "Banner created", carouselDTO.FromCarouselImageModel(image))
}

// PUT /api/admin/carousel/:id
func (h *CarouselController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var image carouselModel.CarouselImageModel
	if err := h.DB.First(&image, "carousel_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
	}

	var req carouselDTO.UpdateCarouselImageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&image)

	// optional replacement upload; the stored file is swapped only after the
	// row actually saves, otherwise the old row would point at a deleted file
	oldPath := ""
	if fh, ferr := c.FormFile("image"); ferr == nil && fh != nil {
		relPath, err := helper.SaveUploadedImage("carousel", fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the image")
		}
		oldPath = image.CarouselImagePath
		image.CarouselImagePath = relPath
	}

	if err := h.DB.Save(&image).Error; err != nil {
		if oldPath != "" {
			_ = helper.RemoveMediaFile(image.CarouselImagePath)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update banner")
	}
	if oldPath != "" {
		_ = helper.RemoveMediaFile(oldPath)
	}
	return helper.JsonUpdated(c, "Banner updated", carouselDTO.FromCarouselImageModel(image))
}

// DELETE /api/admin/carousel/:id
func (h *CarouselController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid banner id")
	}

	var image carouselModel.CarouselImageModel
	if err := h.DB.First(&image, "carousel_image_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Banner not found")
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete banner")
	}
	_ = helper.RemoveMediaFile(image.CarouselImagePath)
	return helper.JsonDeleted(c, "Banner deleted", fiber.Map{"carousel_image_id": id})
}
