package entity

import (
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type UserProfile struct {
	Id              uint
	UserId          uint
	ThemePreference Theme
	GradeLevel      string
	FavouriteTopics []*StudyTopic
	CreatedAt       time.Time
}
