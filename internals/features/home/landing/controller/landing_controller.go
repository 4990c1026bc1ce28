package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementDTO "schoolhub_backend/internals/features/home/announcements/dto"
	announcementModel "schoolhub_backend/internals/features/home/announcements/model"
	announcementService "schoolhub_backend/internals/features/home/announcements/service"
	carouselDTO "schoolhub_backend/internals/features/home/carousel/dto"
	carouselModel "schoolhub_backend/internals/features/home/carousel/model"
	newsDTO "schoolhub_backend/internals/features/home/news/dto"
	newsModel "schoolhub_backend/internals/features/home/news/model"
	helper "schoolhub_backend/internals/helpers"
)

type LandingController struct {
	DB *gorm.DB
}

func NewLandingController(db *gorm.DB) *LandingController {
	return &LandingController{DB: db}
}

// GET /
// Homepage payload: paged announcements, active carousel banners, and the
// latest news.
func (h *LandingController) Landing(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 3, 20)

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

	var banners []carouselModel.CarouselImageModel
	if err := h.DB.Where("carousel_image_is_active = ?", true).
		Order("carousel_image_order asc, carousel_image_title asc").
		Find(&banners).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load carousel")
	}

	var latestNews []newsModel.NewsArticleModel
	if err := h.DB.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("news_image_order asc")
	}).
		Order("news_article_published_date desc, news_article_created_at desc").
		Limit(5).
		Find(&latestNews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load news")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"announcements": announcementDTO.FromAnnouncementModels(announcements),
		"pagination":    helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage),
		"carousel":      carouselDTO.FromCarouselImageModels(banners),
		"latest_news":   newsDTO.FromNewsArticleModels(latestNews),
	})
}
