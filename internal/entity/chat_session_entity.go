package entity

import (
	"time"
)

const DefaultChatSessionTitle = "New Study Session"

type ChatSession struct {
	Id        uint
	UserId    *uint
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnedBy reports whether the session belongs to the given user. Anonymous sessions
// are owned by nobody.
func (s *ChatSession) OwnedBy(userId uint) bool {
	return s.UserId != nil && *s.UserId == userId
}
