package unitofwork

import (
	"context"

	"study-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	StudyTopicRepository() contract.StudyTopicRepository
	UserProfileRepository() contract.UserProfileRepository
}
