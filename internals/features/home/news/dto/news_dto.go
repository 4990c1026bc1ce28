package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/home/news/model"
	helper "schoolhub_backend/internals/helpers"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateNewsArticleRequest struct {
	Title         string `json:"news_article_title" validate:"required,min=1,max=200"`
	Content       string `json:"news_article_content" validate:"required"`
	PublishedDate string `json:"news_article_published_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateNewsArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateNewsArticleRequest) ToModel(authorID uuid.UUID) m.NewsArticleModel {
	aid := authorID
	published := helper.Today()
	if r.PublishedDate != "" {
		if d, err := time.Parse(helper.DateOnly, r.PublishedDate); err == nil {
			published = d
		}
	}
	return m.NewsArticleModel{
		NewsArticleTitle:         r.Title,
		NewsArticleContent:       r.Content,
		NewsArticlePublishedDate: published,
		NewsArticleAuthorUserID:  &aid,
	}
}

type UpdateNewsArticleRequest struct {
	Title         *string `json:"news_article_title" validate:"omitempty,min=1,max=200"`
	Content       *string `json:"news_article_content"`
	PublishedDate *string `json:"news_article_published_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r UpdateNewsArticleRequest) Apply(mo *m.NewsArticleModel) {
	if r.Title != nil {
		mo.NewsArticleTitle = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		mo.NewsArticleContent = strings.TrimSpace(*r.Content)
	}
	if r.PublishedDate != nil {
		if d, err := time.Parse(helper.DateOnly, *r.PublishedDate); err == nil {
			mo.NewsArticlePublishedDate = d
		}
	}
}

/* =========================
   RESPONSE
========================= */

type NewsImageResponse struct {
	NewsImageID uuid.UUID `json:"news_image_id"`
	Path        string    `json:"news_image_path"`
	Caption     string    `json:"news_image_caption"`
	Order       int       `json:"news_image_order"`
}

type NewsArticleResponse struct {
	NewsArticleID uuid.UUID           `json:"news_article_id"`
	Title         string              `json:"news_article_title"`
	Content       string              `json:"news_article_content"`
	PublishedDate string              `json:"news_article_published_date"`
	Author        string              `json:"author,omitempty"`
	Images        []NewsImageResponse `json:"images"`
}

func FromNewsArticleModel(mo m.NewsArticleModel) NewsArticleResponse {
	resp := NewsArticleResponse{
		NewsArticleID: mo.NewsArticleID,
		Title:         mo.NewsArticleTitle,
		Content:       mo.NewsArticleContent,
		PublishedDate: mo.NewsArticlePublishedDate.Format(helper.DateOnly),
		Images:        make([]NewsImageResponse, 0, len(mo.Images)),
	}
	if mo.Author != nil {
		resp.Author = mo.Author.UserName
	}
	for _, img := range mo.Images {
		resp.Images = append(resp.Images, NewsImageResponse{
			NewsImageID: img.NewsImageID,
			Path:        img.NewsImagePath,
			Caption:     img.NewsImageCaption,
			Order:       img.NewsImageOrder,
		})
	}
	return resp
}

func FromNewsArticleModels(rows []m.NewsArticleModel) []NewsArticleResponse {
	out := make([]NewsArticleResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromNewsArticleModel(rows[i]))
	}
	return out
}
