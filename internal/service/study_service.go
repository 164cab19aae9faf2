package service

import (
	"context"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/tutor"
)

const topicSuggestionCount = 3

var aboutFeatures = []string{
	"AI-powered Q&A on study topics",
	"Summarizes textbooks & notes",
	"Creates quizzes for practice",
	"Tracks your study progress",
	"Study tips & strategies",
	"Chat history",
}

const (
	aboutAppName     = "AI Study Assistant for Students & Professionals"
	aboutDescription = "Your personal AI-powered Study companion that helps you learn faster, stay organized, and answer your academic questions effectively & instantly."
	aboutCreator     = "Keiky"
)

type IStudyService interface {
	GetStudyTips(ctx context.Context, subject string) *dto.StudyTipsResponse
	GetTopics(ctx context.Context) ([]*dto.StudyTopicWithSuggestionsResponse, error)
	GetHome(ctx context.Context, visitorId string, userId *uint) (*dto.HomeResponse, error)
	GetAbout(ctx context.Context, visitorId string) (*dto.AboutResponse, error)
}

type studyService struct {
	uowFactory   unitofwork.RepositoryFactory
	themeService IThemeService
}

func NewStudyService(uowFactory unitofwork.RepositoryFactory, themeService IThemeService) IStudyService {
	return &studyService{
		uowFactory:   uowFactory,
		themeService: themeService,
	}
}

// GetStudyTips echoes the subject as given; the lookup itself ignores case.
func (ss *studyService) GetStudyTips(_ context.Context, subject string) *dto.StudyTipsResponse {
	if subject == "" {
		subject = tutor.DefaultSubject
	}
	return &dto.StudyTipsResponse{
		Tips:    tutor.Suggestions(subject),
		Subject: subject,
		Success: true,
	}
}

func (ss *studyService) GetTopics(ctx context.Context) ([]*dto.StudyTopicWithSuggestionsResponse, error) {
	topics, err := ss.activeTopics(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.StudyTopicWithSuggestionsResponse, 0, len(topics))
	for _, topic := range topics {
		response = append(response, &dto.StudyTopicWithSuggestionsResponse{
			Topic:       toTopicResponse(topic),
			Suggestions: tutor.Suggestions(topic.Name)[:topicSuggestionCount],
		})
	}
	return response, nil
}

func (ss *studyService) GetHome(ctx context.Context, visitorId string, userId *uint) (*dto.HomeResponse, error) {
	theme, err := ss.themeService.GetTheme(ctx, visitorId)
	if err != nil {
		return nil, err
	}

	topics, err := ss.activeTopics(ctx)
	if err != nil {
		return nil, err
	}

	studyTopics := make([]dto.StudyTopicResponse, 0, len(topics))
	for _, topic := range topics {
		studyTopics = append(studyTopics, toTopicResponse(topic))
	}

	return &dto.HomeResponse{
		CurrentTheme: theme.CurrentTheme,
		StudyTopics:  studyTopics,
		UserId:       userId,
	}, nil
}

func (ss *studyService) GetAbout(ctx context.Context, visitorId string) (*dto.AboutResponse, error) {
	theme, err := ss.themeService.GetTheme(ctx, visitorId)
	if err != nil {
		return nil, err
	}

	features := make([]string, len(aboutFeatures))
	copy(features, aboutFeatures)

	return &dto.AboutResponse{
		AppName:      aboutAppName,
		Description:  aboutDescription,
		Features:     features,
		Creator:      aboutCreator,
		CurrentTheme: theme.CurrentTheme,
		IsDark:       theme.IsDark,
	}, nil
}

func (ss *studyService) activeTopics(ctx context.Context) ([]*entity.StudyTopic, error) {
	uow := ss.uowFactory.NewUnitOfWork(ctx)
	return uow.StudyTopicRepository().FindAll(ctx, specification.ActiveTopics{})
}

func toTopicResponse(t *entity.StudyTopic) dto.StudyTopicResponse {
	return dto.StudyTopicResponse{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		Icon:        t.Icon,
	}
}
