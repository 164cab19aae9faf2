package dto

import (
	"time"
)

// ChatEventMessage is the payload carried on the in-process chat event topic.
type ChatEventMessage struct {
	Type         string                 `json:"type"`
	SessionId    uint                   `json:"session_id"`
	UserId       *uint                  `json:"user_id"`
	SessionTitle string                 `json:"session_title,omitempty"`
	Messages     []*ChatMessageResponse `json:"messages,omitempty"`
	OccurredAt   time.Time              `json:"occurred_at"`
}
