package model

import (
	"time"
)

type UserProfile struct {
	Id              uint      `gorm:"primaryKey;autoIncrement"`
	UserId          uint      `gorm:"not null;uniqueIndex"`
	ThemePreference string    `gorm:"type:varchar(10);not null;default:'light'"`
	GradeLevel      string    `gorm:"type:varchar(50)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`

	FavouriteTopics []StudyTopic `gorm:"many2many:user_profile_favourite_topics;constraint:OnDelete:CASCADE"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
