package message

import (
	"context"
	"time"

	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/repository/unitofwork"
)

// Factory handles chat message creation and persistence
type Factory struct {
	now func() time.Time
}

func NewFactory() *Factory {
	return &Factory{now: time.Now}
}

func (f *Factory) CreateUserMessage(sessionId uint, content string) *entity.ChatMessage {
	return &entity.ChatMessage{
		ChatSessionId: sessionId,
		Role:          entity.ChatRoleUser,
		Content:       content,
		CreatedAt:     f.now(),
	}
}

func (f *Factory) CreateAssistantMessage(sessionId uint, content string) *entity.ChatMessage {
	return &entity.ChatMessage{
		ChatSessionId: sessionId,
		Role:          entity.ChatRoleAssistant,
		Content:       content,
		CreatedAt:     f.now(),
	}
}

// Save writes the message and fills in its id.
func (f *Factory) Save(ctx context.Context, uow unitofwork.UnitOfWork, msg *entity.ChatMessage) error {
	return uow.ChatMessageRepository().Create(ctx, msg)
}
