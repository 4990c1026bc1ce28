package model

import (
	"github.com/google/uuid"
)

// NewsImageModel is one image attached to an article, stored under
// news_images/<article-id>/ in the media root and ordered by position.
// Rows cascade away with their article.
type NewsImageModel struct {
	NewsImageID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:news_image_id" json:"news_image_id"`
	NewsImageArticleID uuid.UUID `gorm:"type:uuid;not null;column:news_image_article_id" json:"news_image_article_id"`
	NewsImagePath      string    `gorm:"size:255;not null;column:news_image_path" json:"news_image_path"`
	NewsImageCaption   string    `gorm:"size:255;not null;default:'';column:news_image_caption" json:"news_image_caption"`
	NewsImageOrder     int       `gorm:"not null;default:0;column:news_image_order" json:"news_image_order"`

	Article *NewsArticleModel `gorm:"foreignKey:NewsImageArticleID;references:NewsArticleID;constraint:OnDelete:CASCADE" json:"article,omitempty"`
}

func (NewsImageModel) TableName() string {
	return "news_images"
}
