package model

import (
	"time"
)

type ChatMessage struct {
	Id            uint      `gorm:"primaryKey;autoIncrement"`
	ChatSessionId uint      `gorm:"not null;index:idx_chat_messages_session_created,priority:1"`
	Role          string    `gorm:"type:varchar(10);not null"`
	Content       string    `gorm:"type:text;not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime;index:idx_chat_messages_session_created,priority:2"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
