package model

import (
	"time"
)

type ChatSession struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	UserId    *uint     `gorm:"index"` // nil for anonymous sessions
	Title     string    `gorm:"type:varchar(200);not null;default:'New Study Session'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`

	Messages []ChatMessage `gorm:"foreignKey:ChatSessionId;constraint:OnDelete:CASCADE"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
