package service

import (
	"context"
	"sync"
	"testing"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/database"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewInMemoryDB()
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.All()...))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func newTestFactory(t *testing.T) unitofwork.RepositoryFactory {
	return unitofwork.NewRepositoryFactory(newTestDB(t))
}

func nopLogger() logger.ILogger {
	return logger.NewNopLogger()
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []dto.ChatEventMessage
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event dto.ChatEventMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Events() []dto.ChatEventMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]dto.ChatEventMessage, len(p.events))
	copy(out, p.events)
	return out
}
