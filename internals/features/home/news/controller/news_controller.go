package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	newsDTO "schoolhub_backend/internals/features/home/news/dto"
	newsModel "schoolhub_backend/internals/features/home/news/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type NewsController struct {
	DB *gorm.DB
}

func NewNewsController(db *gorm.DB) *NewsController {
	return &NewsController{DB: db}
}

// GET /api/news?page=
func (h *NewsController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 5, 50)

	var total int64
	if err := h.DB.Model(&newsModel.NewsArticleModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}
	paging = helper.ClampPaging(paging, total)

	var articles []newsModel.NewsArticleModel
	if err := h.DB.Preload("Author").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("news_image_order asc")
		}).
		Order("news_article_published_date desc, news_article_created_at desc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&articles).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	return helper.JsonList(c, "OK", newsDTO.FromNewsArticleModels(articles),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/news/:id
func (h *NewsController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article id")
	}

	var article newsModel.NewsArticleModel
	if err := h.DB.Preload("Author").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("news_image_order asc")
		}).
		First(&article, "news_article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	return helper.JsonOK(c, "OK", newsDTO.FromNewsArticleModel(article))
}

// POST /api/admin/news
func (h *NewsController) Create(c *fiber.Ctx) error {
	var req newsDTO.CreateNewsArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	article := req.ToModel(authorID)
	if err := h.DB.Create(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create article")
	}
	return helper.JsonCreated(c, "Article created", newsDTO.FromNewsArticleModel(article))
}

// PUT /api/admin/news/:id
func (h *NewsController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article id")
	}

	var article newsModel.NewsArticleModel
	if err := h.DB.First(&article, "news_article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	var req newsDTO.UpdateNewsArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&article)
	if err := h.DB.Save(&article).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update article")
	}
	return helper.JsonUpdated(c, "Article updated", newsDTO.FromNewsArticleModel(article))
}

// DELETE /api/admin/news/:id
func (h *NewsController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article id")
	}

	var images []newsModel.NewsImageModel
	h.DB.Where("news_image_article_id = ?", id).Find(&images)

	if err := h.DB.Delete(&newsModel.NewsArticleModel{}, "news_article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete article")
	}
	for _, img := range images {
		_ = helper.RemoveMediaFile(img.NewsImagePath)
	}
	return helper.JsonDeleted(c, "Article deleted", fiber.Map{"news_article_id": id})
}

// POST /api/admin/news/:id/images (multipart field "image")
func (h *NewsController) AddImage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid article id")
	}

	var article newsModel.NewsArticleModel
	if err := h.DB.First(&article, "news_article_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Article not found")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing image file")
	}

	relPath, err := helper.SaveUploadedImage("news_images/"+id.String(), fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the image")
	}

	order := 0
	if raw := strings.TrimSpace(c.FormValue("order")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			order = n
		}
	}

	image := newsModel.NewsImageModel{
		NewsImageArticleID: id,
		NewsImagePath:      relPath,
		NewsImageCaption:   strings.TrimSpace(c.FormValue("caption")),
		NewsImageOrder:     order,
	}
	if err := h.DB.Create(&image).Error; err != nil {
		_ = helper.RemoveMediaFile(relPath)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to attach image")
	}
	return helper.JsonCreated(c, "Image attached", image)
}

// DELETE /api/admin/news/:id/images/:imageId
func (h *NewsController) RemoveImage(c *fiber.Ctx) error {
	imageID, err := uuid.Parse(c.Params("imageId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid image id")
	}

	var image newsModel.NewsImageModel
	if err := h.DB.First(&image, "news_image_id = ?", imageID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Image not found")
	}

	if err := h.DB.Delete(&image).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to remove image")
	}
	_ = helper.RemoveMediaFile(image.NewsImagePath)
	return helper.JsonDeleted(c, "Image removed", fiber.Map{"news_image_id": imageID})
}
