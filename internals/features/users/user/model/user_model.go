package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the login account. Teacher/parent membership is carried by the
// one-to-one profile rows and staff by the flag; the three are resolved into
// a single role claim at login.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserName     string    `gorm:"size:50;uniqueIndex;not null;column:user_name" json:"user_name"`
	UserEmail    string    `gorm:"size:255;uniqueIndex;not null;column:user_email" json:"user_email"`
	UserPassword string    `gorm:"not null;column:user_password" json:"-"`
	UserIsStaff  bool      `gorm:"not null;default:false;column:user_is_staff" json:"user_is_staff"`
	UserIsActive bool      `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time `gorm:"autoCreateTime;column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"autoUpdateTime;column:user_updated_at" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
