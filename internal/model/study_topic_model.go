package model

import (
	"time"
)

type StudyTopic struct {
	Id          uint      `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100);not null;default:'📚'"`
	IsActive    bool      `gorm:"not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (StudyTopic) TableName() string {
	return "study_topics"
}
