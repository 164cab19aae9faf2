package entity

import (
	"time"
)

type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

func (r ChatRole) Valid() bool {
	return r == ChatRoleUser || r == ChatRoleAssistant
}

type ChatMessage struct {
	Id            uint
	ChatSessionId uint
	Role          ChatRole
	Content       string
	CreatedAt     time.Time
}
