package specification

import (
	"study-assistant-be/internal/entity"

	"gorm.io/gorm"
)

type ByChatSessionID struct {
	ChatSessionID uint
}

func (s ByChatSessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_session_id = ?", s.ChatSessionID)
}

type ByRole struct {
	Role entity.ChatRole
}

func (s ByRole) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("role = ?", string(s.Role))
}

// ConversationOrder sorts messages in conversation order. The id breaks ties
// between messages written within the same clock tick.
type ConversationOrder struct {
	Desc bool
}

func (s ConversationOrder) Apply(db *gorm.DB) *gorm.DB {
	if s.Desc {
		return db.Order("created_at DESC").Order("id DESC")
	}
	return db.Order("created_at ASC").Order("id ASC")
}
