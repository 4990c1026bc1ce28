package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/home/carousel/model"
)

type CreateCarouselImageRequest struct {
	Title    string `json:"carousel_image_title" form:"carousel_image_title" validate:"required,min=1,max=100"`
	Caption  string `json:"carousel_image_caption" form:"carousel_image_caption" validate:"max=200"`
	Order    int    `json:"carousel_image_order" form:"carousel_image_order" validate:"gte=0"`
	IsActive *bool  `json:"carousel_image_is_active" form:"carousel_image_is_active"`
}

func (r *CreateCarouselImageRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Caption = strings.TrimSpace(r.Caption)
}

func (r CreateCarouselImageRequest) ToModel(path string) m.CarouselImageModel {
	mo := m.CarouselImageModel{
		CarouselImageTitle:    r.Title,
		CarouselImagePath:     path,
		CarouselImageCaption:  r.Caption,
		CarouselImageOrder:    r.Order,
		CarouselImageIsActive: true,
	}
	if r.IsActive != nil {
		mo.CarouselImageIsActive = *r.IsActive
	}
	return mo
}

type UpdateCarouselImageRequest struct {
	Title    *string `json:"carousel_image_title" form:"carousel_image_title" validate:"omitempty,min=1,max=100"`
	Caption  *string `json:"carousel_image_caption" form:"carousel_image_caption" validate:"omitempty,max=200"`
	Order    *int    `json:"carousel_image_order" form:"carousel_image_order" validate:"omitempty,gte=0"`
	IsActive *bool   `json:"carousel_image_is_active" form:"carousel_image_is_active"`
}

func (r UpdateCarouselImageRequest) Apply(mo *m.CarouselImageModel) {
	if r.Title != nil {
		mo.CarouselImageTitle = strings.TrimSpace(*r.Title)
	}
	if r.Caption != nil {
		mo.CarouselImageCaption = strings.TrimSpace(*r.Caption)
	}
	if r.Order != nil {
		mo.CarouselImageOrder = *r.Order
	}
	if r.IsActive != nil {
		mo.CarouselImageIsActive = *r.IsActive
	}
}

type CarouselImageResponse struct {
	CarouselImageID uuid.UUID `json:"carousel_image_id"`
	Title           string    `json:"carousel_image_title"`
	Path            string    `json:"carousel_image_path"`
	Caption         string    `json:"carousel_image_caption"`
	Order           int       `json:"carousel_image_order"`
	IsActive        bool      `json:"carousel_image_is_active"`
}

func FromCarouselImageModel(mo m.CarouselImageModel) CarouselImageResponse {
	return CarouselImageResponse{
		CarouselImageID: mo.CarouselImageID,
		Title:           mo.CarouselImageTitle,
		Path:            mo.CarouselImagePath,
		Caption:         mo.CarouselImageCaption,
		Order:           mo.CarouselImageOrder,
		IsActive:        mo.CarouselImageIsActive,
	}
}

func FromCarouselImageModels(rows []m.CarouselImageModel) []CarouselImageResponse {
	out := make([]CarouselImageResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromCarouselImageModel(rows[i]))
	}
	return out
}
