package mapper

import (
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"
)

type StudyMapper struct{}

func NewStudyMapper() *StudyMapper {
	return &StudyMapper{}
}

func (m *StudyMapper) StudyTopicToEntity(t *model.StudyTopic) *entity.StudyTopic {
	if t == nil {
		return nil
	}

	return &entity.StudyTopic{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *StudyMapper) StudyTopicToModel(t *entity.StudyTopic) *model.StudyTopic {
	if t == nil {
		return nil
	}

	return &model.StudyTopic{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
	}
}

func (m *StudyMapper) StudyTopicsToEntities(topics []model.StudyTopic) []*entity.StudyTopic {
	entities := make([]*entity.StudyTopic, len(topics))
	for i := range topics {
		entities[i] = m.StudyTopicToEntity(&topics[i])
	}
	return entities
}

func (m *StudyMapper) UserProfileToEntity(p *model.UserProfile) *entity.UserProfile {
	if p == nil {
		return nil
	}

	return &entity.UserProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		ThemePreference: entity.Theme(p.ThemePreference),
		GradeLevel:      p.GradeLevel,
		FavouriteTopics: m.StudyTopicsToEntities(p.FavouriteTopics),
		CreatedAt:       p.CreatedAt,
	}
}

// UserProfileToModel leaves FavouriteTopics empty; favourites are written through
// the association API so a plain Save never rewrites the join table.
func (m *StudyMapper) UserProfileToModel(p *entity.UserProfile) *model.UserProfile {
	if p == nil {
		return nil
	}

	return &model.UserProfile{
		Id:              p.Id,
		UserId:          p.UserId,
		ThemePreference: string(p.ThemePreference),
		GradeLevel:      p.GradeLevel,
		CreatedAt:       p.CreatedAt,
	}
}
