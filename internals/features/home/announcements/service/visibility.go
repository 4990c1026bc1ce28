package service

import (
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
)

// VisibleTo scopes an announcements query to what the role may see: the
// untargeted ones for everyone, plus the ones naming the role.
func VisibleTo(role string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if role == "" || role == constants.RoleUnassigned {
			return db.Where("announcement_audience = '{}'")
		}
		return db.Where("announcement_audience = '{}' OR ? = ANY(announcement_audience)", role)
	}
}
