package entity

import (
	"time"
)

const DefaultTopicIcon = "📚"

type StudyTopic struct {
	Id          uint
	Name        string
	Description string
	Icon        string
	IsActive    bool
	CreatedAt   time.Time
}
