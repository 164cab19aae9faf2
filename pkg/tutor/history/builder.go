package history

import (
	"context"
	"strings"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
)

// DefaultWindow is how many of the student's own messages feed the selector.
const DefaultWindow = 3

// Builder derives the short rolling context for a session
type Builder struct {
	window int
}

func NewBuilder(window int) *Builder {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Builder{window: window}
}

// Build returns the latest user messages oldest-first, joined by a single space.
// It reads through uow so it sees writes of the surrounding transaction.
func (b *Builder) Build(ctx context.Context, uow unitofwork.UnitOfWork, sessionId uint) (string, error) {
	recent, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.ByRole{Role: entity.ChatRoleUser},
		specification.ConversationOrder{Desc: true},
		specification.Limit{Count: b.window},
	)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		parts = append(parts, recent[i].Content)
	}
	return strings.Join(parts, " "), nil
}
