package dto

type ToggleThemeRequest struct {
	Theme *string `json:"theme"`
}

type ToggleThemeResponse struct {
	Status string `json:"status"`
	Theme  string `json:"theme"`
}

type ThemeResponse struct {
	CurrentTheme string `json:"current_theme"`
	IsDark       bool   `json:"is_dark"`
}
