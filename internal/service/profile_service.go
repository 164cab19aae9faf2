package service

import (
	"context"
	"fmt"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
)

type IProfileService interface {
	GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error)
}

type profileService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewProfileService(uowFactory unitofwork.RepositoryFactory) IProfileService {
	return &profileService{uowFactory: uowFactory}
}

// GetProfile creates the profile with defaults on first access. Concurrent first
// requests for one user all end up with the same row.
func (ps *profileService) GetProfile(ctx context.Context, userId uint) (*dto.UserProfileResponse, error) {
	uow := ps.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.UserProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile, err = ps.createProfile(ctx, uow, userId)
		if err != nil {
			return nil, err
		}
	}

	favourites := make([]dto.StudyTopicResponse, 0, len(profile.FavouriteTopics))
	for _, topic := range profile.FavouriteTopics {
		favourites = append(favourites, toTopicResponse(topic))
	}

	return &dto.UserProfileResponse{
		Id:              profile.Id,
		UserId:          profile.UserId,
		ThemePreference: string(profile.ThemePreference),
		GradeLevel:      profile.GradeLevel,
		FavouriteTopics: favourites,
		CreatedAt:       profile.CreatedAt,
	}, nil
}

func (ps *profileService) createProfile(ctx context.Context, uow unitofwork.UnitOfWork, userId uint) (*entity.UserProfile, error) {
	profile := &entity.UserProfile{
		UserId:          userId,
		ThemePreference: entity.ThemeLight,
	}
	created, err := uow.UserProfileRepository().CreateIfAbsent(ctx, profile)
	if err != nil {
		return nil, err
	}
	if created {
		return profile, nil
	}

	existing, err := uow.UserProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, fmt.Errorf("profile for user %d vanished after insert conflict", userId)
	}
	return existing, nil
}
