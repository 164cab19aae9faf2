package dto

import (
	"time"
)

type UserProfileResponse struct {
	Id              uint                 `json:"id"`
	UserId          uint                 `json:"user_id"`
	ThemePreference string               `json:"theme_preference"`
	GradeLevel      string               `json:"grade_level"`
	FavouriteTopics []StudyTopicResponse `json:"favourite_topics"`
	CreatedAt       time.Time            `json:"created_at"`
}
