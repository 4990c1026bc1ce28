package model

import (
	"time"

	"github.com/google/uuid"
)

// CarouselImageModel is a homepage banner image, shown when active and
// ordered by (order, title).
type CarouselImageModel struct {
	CarouselImageID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:carousel_image_id" json:"carousel_image_id"`
	CarouselImageTitle    string    `gorm:"size:100;not null;column:carousel_image_title" json:"carousel_image_title"`
	CarouselImagePath     string    `gorm:"size:255;not null;column:carousel_image_path" json:"carousel_image_path"`
	CarouselImageCaption  string    `gorm:"size:200;not null;default:'';column:carousel_image_caption" json:"carousel_image_caption"`
	CarouselImageOrder    int       `gorm:"not null;default:0;column:carousel_image_order" json:"carousel_image_order"`
	CarouselImageIsActive bool      `gorm:"not null;default:true;column:carousel_image_is_active" json:"carousel_image_is_active"`

	CarouselImageUploadedAt time.Time `gorm:"autoCreateTime;column:carousel_image_uploaded_at" json:"carousel_image_uploaded_at"`
}

func (CarouselImageModel) TableName() string {
	return "carousel_images"
}
