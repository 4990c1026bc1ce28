package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	m "schoolhub_backend/internals/features/home/announcements/model"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateAnnouncementRequest struct {
	Title    string   `json:"announcement_title" validate:"required,min=1,max=200"`
	Content  string   `json:"announcement_content" validate:"required"`
	Audience []string `json:"announcement_audience" validate:"omitempty,dive,oneof=staff teacher parent"`
}

func (r *CreateAnnouncementRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
}

func (r CreateAnnouncementRequest) ToModel(postedBy uuid.UUID) m.AnnouncementModel {
	pid := postedBy
	audience := r.Audience
	if audience == nil {
		audience = []string{}
	}
	return m.AnnouncementModel{
		AnnouncementTitle:          r.Title,
		AnnouncementContent:        r.Content,
		AnnouncementAudience:       pq.StringArray(audience),
		AnnouncementPostedByUserID: &pid,
	}
}

type UpdateAnnouncementRequest struct {
	Title    *string   `json:"announcement_title" validate:"omitempty,min=1,max=200"`
	Content  *string   `json:"announcement_content"`
	Audience *[]string `json:"announcement_audience" validate:"omitempty,dive,oneof=staff teacher parent"`
}

func (r UpdateAnnouncementRequest) Apply(mo *m.AnnouncementModel) {
	if r.Title != nil {
		mo.AnnouncementTitle = strings.TrimSpace(*r.Title)
	}
	if r.Content != nil {
		mo.AnnouncementContent = strings.TrimSpace(*r.Content)
	}
	if r.Audience != nil {
		mo.AnnouncementAudience = pq.StringArray(*r.Audience)
	}
}

/* =========================
   RESPONSE
========================= */

type AnnouncementResponse struct {
	AnnouncementID uuid.UUID `json:"announcement_id"`
	Title          string    `json:"announcement_title"`
	Content        string    `json:"announcement_content"`
	Audience       []string  `json:"announcement_audience"`
	PostedBy       string    `json:"posted_by,omitempty"`
	Timestamp      time.Time `json:"announcement_timestamp"`
}

func FromAnnouncementModel(mo m.AnnouncementModel) AnnouncementResponse {
	resp := AnnouncementResponse{
		AnnouncementID: mo.AnnouncementID,
		Title:          mo.AnnouncementTitle,
		Content:        mo.AnnouncementContent,
		Audience:       []string(mo.AnnouncementAudience),
		Timestamp:      mo.AnnouncementTimestamp,
	}
	if resp.Audience == nil {
		resp.Audience = []string{}
	}
	if mo.PostedBy != nil {
		resp.PostedBy = mo.PostedBy.UserName
	}
	return resp
}

func FromAnnouncementModels(rows []m.AnnouncementModel) []AnnouncementResponse {
	out := make([]AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAnnouncementModel(rows[i]))
	}
	return out
}
