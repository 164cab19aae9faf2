package specification

import (
	"gorm.io/gorm"
)

type ActiveTopics struct{}

func (s ActiveTopics) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}
