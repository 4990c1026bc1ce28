package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

// AnnouncementModel is a site-wide notice, listed newest-first. An empty
// audience array means visible to everyone; otherwise it lists the roles
// (staff/teacher/parent) the announcement targets.
type AnnouncementModel struct {
	AnnouncementID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:announcement_id" json:"announcement_id"`
	AnnouncementTitle   string    `gorm:"size:200;not null;column:announcement_title" json:"announcement_title"`
	AnnouncementContent string    `gorm:"type:text;not null;column:announcement_content" json:"announcement_content"`

	AnnouncementAudience pq.StringArray `gorm:"type:text[];not null;default:'{}';column:announcement_audience" json:"announcement_audience"`

	AnnouncementPostedByUserID *uuid.UUID `gorm:"type:uuid;column:announcement_posted_by_user_id" json:"announcement_posted_by_user_id,omitempty"`

	AnnouncementTimestamp time.Time `gorm:"autoCreateTime;column:announcement_timestamp" json:"announcement_timestamp"`

	PostedBy *userModel.UserModel `gorm:"foreignKey:AnnouncementPostedByUserID;references:UserID;constraint:OnDelete:SET NULL" json:"posted_by,omitempty"`
}

func (AnnouncementModel) TableName() string {
	return "announcements"
}
