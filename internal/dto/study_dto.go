package dto

type StudyTipsResponse struct {
	Tips    []string `json:"tips"`
	Subject string   `json:"subject"`
	Success bool     `json:"success"`
}

type StudyTopicResponse struct {
	Id          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type StudyTopicWithSuggestionsResponse struct {
	Topic       StudyTopicResponse `json:"topic"`
	Suggestions []string           `json:"suggestions"`
}

type HomeResponse struct {
	CurrentTheme string               `json:"current_theme"`
	StudyTopics  []StudyTopicResponse `json:"study_topics"`
	UserId       *uint                `json:"user_id"`
}

type AboutResponse struct {
	AppName      string   `json:"app_name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Creator      string   `json:"creator"`
	CurrentTheme string   `json:"current_theme"`
	IsDark       bool     `json:"is_dark"`
}
