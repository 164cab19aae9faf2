package service

import (
	"context"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/contract"
)

const ThemePreferenceKey = "theme"

type IThemeService interface {
	GetTheme(ctx context.Context, visitorId string) (*dto.ThemeResponse, error)
	ToggleTheme(ctx context.Context, visitorId string, request *dto.ToggleThemeRequest) (*dto.ToggleThemeResponse, error)
}

type themeService struct {
	preferences contract.VisitorPreferenceRepository
}

func NewThemeService(preferences contract.VisitorPreferenceRepository) IThemeService {
	return &themeService{preferences: preferences}
}

// GetTheme defaults to light only when the visitor never set a theme, and stores
// the default so later reads are stable. A stored empty string is kept.
func (ts *themeService) GetTheme(ctx context.Context, visitorId string) (*dto.ThemeResponse, error) {
	theme, found, err := ts.preferences.Lookup(ctx, visitorId, ThemePreferenceKey)
	if err != nil {
		return nil, err
	}
	if !found {
		theme = string(entity.ThemeLight)
		if err := ts.preferences.Set(ctx, visitorId, ThemePreferenceKey, theme); err != nil {
			return nil, err
		}
	}

	return &dto.ThemeResponse{
		CurrentTheme: theme,
		IsDark:       theme == string(entity.ThemeDark),
	}, nil
}

// ToggleTheme stores the requested value verbatim. A missing field means light.
func (ts *themeService) ToggleTheme(ctx context.Context, visitorId string, request *dto.ToggleThemeRequest) (*dto.ToggleThemeResponse, error) {
	theme := string(entity.ThemeLight)
	if request.Theme != nil {
		theme = *request.Theme
	}

	if err := ts.preferences.Set(ctx, visitorId, ThemePreferenceKey, theme); err != nil {
		return nil, err
	}

	return &dto.ToggleThemeResponse{Status: "success", Theme: theme}, nil
}
