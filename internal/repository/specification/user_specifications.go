package specification

import (
	"gorm.io/gorm"
)

type UserOwnedBy struct {
	UserID uint
}

func (s UserOwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
