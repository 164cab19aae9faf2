package dto

import (
	"time"
)

type CreateSessionResponse struct {
	Id    uint   `json:"id"`
	Title string `json:"title"`
}

type GetAllSessionsResponse struct {
	Id        uint      `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ChatMessageResponse struct {
	Id        uint      `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"` // HH:MM
	CreatedAt time.Time `json:"created_at"`
}

type GetChatHistoryResponse struct {
	Session  GetAllSessionsResponse `json:"session"`
	Messages []*ChatMessageResponse `json:"messages"`
}

type SendChatRequest struct {
	SessionId uint   `json:"session_id"`
	Message   string `json:"message"`
}

type SendChatMessage struct {
	Id        uint   `json:"id"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"` // HH:MM
}

type SendChatResponse struct {
	Success      bool            `json:"success"`
	UserMessage  SendChatMessage `json:"user_message"`
	AiMessage    SendChatMessage `json:"ai_message"`
	SessionTitle string          `json:"session_title"`
}

type DeleteSessionResponse struct {
	// NextSessionId is the most recently updated remaining session, if any.
	NextSessionId *uint `json:"next_session_id"`
}

type ListSessionsQuery struct {
	Limit int `validate:"gte=0,lte=500"`
}

type SessionPathParams struct {
	Id uint `params:"id" validate:"required"`
}
