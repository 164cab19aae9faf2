package session

import (
	"context"
	"errors"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
)

const (
	titleMaxRunes = 50
	titleEllipsis = "..."
)

var ErrSessionNotFound = errors.New("session not found or access denied")

// Manager handles session lookups and metadata updates inside a unit of work
type Manager struct{}

func NewManager() *Manager {
	return &Manager{}
}

// VerifyChatSession loads a session owned by userId. With lock set the row stays
// locked until the transaction ends, serializing concurrent sends.
func (m *Manager) VerifyChatSession(ctx context.Context, uow unitofwork.UnitOfWork, userId uint, sessionId uint, lock bool) (*entity.ChatSession, error) {
	specs := []specification.Specification{
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	}
	if lock {
		specs = append(specs, specification.ForUpdate{})
	}

	session, err := uow.ChatSessionRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// TitleFromMessage keeps the first 50 characters and marks the cut with "...".
func TitleFromMessage(text string) string {
	runes := []rune(text)
	if len(runes) <= titleMaxRunes {
		return text
	}
	return string(runes[:titleMaxRunes]) + titleEllipsis
}

// IsFirstMessage reports whether the session holds exactly one message,
// the one just written.
func (m *Manager) IsFirstMessage(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uint) (bool, error) {
	count, err := uow.ChatMessageRepository().Count(ctx, specification.ByChatSessionID{ChatSessionID: sessionId})
	if err != nil {
		return false, err
	}
	return count == 1, nil
}

// Retitle sets the title from the first message without saving.
func (m *Manager) Retitle(session *entity.ChatSession, firstMessage string) {
	session.Title = TitleFromMessage(firstMessage)
}

// Touch saves the session, which bumps updated_at even when nothing else changed.
func (m *Manager) Touch(ctx context.Context, uow unitofwork.UnitOfWork, session *entity.ChatSession) error {
	return uow.ChatSessionRepository().Update(ctx, session)
}
