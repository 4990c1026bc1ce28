package model

import (
	"time"

	"github.com/google/uuid"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

// NewsArticleModel is a public news post, listed newest-first by published
// date then creation time.
type NewsArticleModel struct {
	NewsArticleID            uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:news_article_id" json:"news_article_id"`
	NewsArticleTitle         string     `gorm:"size:200;not null;column:news_article_title" json:"news_article_title"`
	NewsArticleContent       string     `gorm:"type:text;not null;column:news_article_content" json:"news_article_content"`
	NewsArticlePublishedDate time.Time  `gorm:"type:date;not null;column:news_article_published_date" json:"news_article_published_date"`
	NewsArticleAuthorUserID  *uuid.UUID `gorm:"type:uuid;column:news_article_author_user_id" json:"news_article_author_user_id,omitempty"`

	NewsArticleCreatedAt time.Time `gorm:"autoCreateTime;column:news_article_created_at" json:"news_article_created_at"`
	NewsArticleUpdatedAt time.Time `gorm:"autoUpdateTime;column:news_article_updated_at" json:"news_article_updated_at"`

	Author *userModel.UserModel `gorm:"foreignKey:NewsArticleAuthorUserID;references:UserID;constraint:OnDelete:SET NULL" json:"author,omitempty"`
	Images []NewsImageModel     `gorm:"foreignKey:NewsImageArticleID;references:NewsArticleID" json:"images,omitempty"`
}

func (NewsArticleModel) TableName() string {
	return "news_articles"
}
