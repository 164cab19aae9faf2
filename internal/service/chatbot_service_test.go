package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/model"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/events"
	"study-assistant-be/pkg/tutor"
	"study-assistant-be/pkg/tutor/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type failingResponder struct{}

func (failingResponder) Respond(context.Context, string) (string, error) {
	return "", errors.New("responder down")
}

func newChatbotService(t *testing.T, engine *tutor.Engine, publisher IPublisherService) (IChatbotService, unitofwork.RepositoryFactory) {
	t.Helper()
	factory := newTestFactory(t)
	if engine == nil {
		engine = tutor.NewKeywordEngine(nopLogger())
	}
	return NewChatbotService(factory, engine, publisher, nopLogger()), factory
}

func requireAppError(t *testing.T, err error, code int) *serverutils.AppError {
	t.Helper()
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestSendChatFirstMessageSetsTitle(t *testing.T) {
	ctx := context.Background()
	publisher := &recordingPublisher{}
	svc, _ := newChatbotService(t, nil, publisher)

	created, err := svc.CreateSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultChatSessionTitle, created.Title)

	res, err := svc.SendChat(ctx, 7, &dto.SendChatRequest{
		SessionId: created.Id,
		Message:   "Can you help me with calculus?",
	})
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, "Can you help me with calculus?", res.SessionTitle)
	assert.Equal(t, "Can you help me with calculus?", res.UserMessage.Content)
	assert.Equal(t, tutor.MathematicsTemplate, res.AiMessage.Content)
	assert.Len(t, res.UserMessage.Timestamp, 5)
	assert.NotEqual(t, res.UserMessage.Id, res.AiMessage.Id)

	published := publisher.Events()
	require.Len(t, published, 1)
	assert.Equal(t, events.ChatMessageExchanged, published[0].Type)
	assert.Equal(t, created.Id, published[0].SessionId)
	assert.Len(t, published[0].Messages, 2)
}

func TestSendChatLongFirstMessageIsTruncated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	text := strings.Repeat("word ", 20)
	res, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: text})
	require.NoError(t, err)

	trimmed := strings.TrimSpace(text)
	assert.Equal(t, trimmed[:50]+"...", res.SessionTitle)
}

func TestSendChatKeepsTitleAfterFirstMessage(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "first question"})
	require.NoError(t, err)
	res, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "second question"})
	require.NoError(t, err)

	assert.Equal(t, "first question", res.SessionTitle)
}

func TestSendChatEmptyMessage(t *testing.T) {
	ctx := context.Background()
	svc, factory := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: text})
		appErr := requireAppError(t, err, http.StatusBadRequest)
		assert.Equal(t, "Message cannot be empty", appErr.Message)
		assert.ErrorIs(t, err, ErrEmptyMessage)
	}

	count, err := factory.NewUnitOfWork(ctx).ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSendChatUnknownOrForeignSession(t *testing.T) {
	ctx := context.Background()
	svc, factory := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, 2, &dto.SendChatRequest{SessionId: created.Id, Message: "hello"})
	requireAppError(t, err, http.StatusNotFound)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id + 100, Message: "hello"})
	requireAppError(t, err, http.StatusNotFound)

	count, err := factory.NewUnitOfWork(ctx).ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSendChatFallsBackWhenResponderFails(t *testing.T) {
	ctx := context.Background()
	engine := tutor.NewEngine(failingResponder{}, nopLogger())
	svc, _ := newChatbotService(t, engine, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	text := "Tell me something interesting about the world please"
	text += strings.Repeat("!", 53-len(text))
	require.Len(t, text, 53)

	res, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: text})
	require.NoError(t, err)
	assert.Equal(t, tutor.FallbackTemplates[1], res.AiMessage.Content)
}

func TestSendChatUsesRecentUserContext(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "I have a biology test"})
	require.NoError(t, err)

	res, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "any tips?"})
	require.NoError(t, err)
	assert.Equal(t, tutor.ScienceTemplate, res.AiMessage.Content)
}

func TestGetChatHistoryOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	for _, text := range []string{"one", "two", "three"} {
		_, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: text})
		require.NoError(t, err)
	}

	history, err := svc.GetChatHistory(ctx, 1, created.Id)
	require.NoError(t, err)
	require.Len(t, history.Messages, 6)

	wantRoles := []string{"user", "assistant", "user", "assistant", "user", "assistant"}
	for i, msg := range history.Messages {
		assert.Equal(t, wantRoles[i], msg.Role)
	}
	assert.Equal(t, "one", history.Messages[0].Content)
	assert.Equal(t, "two", history.Messages[2].Content)
	assert.Equal(t, "three", history.Messages[4].Content)
	assert.Equal(t, "one", history.Session.Title)

	_, err = svc.GetChatHistory(ctx, 2, created.Id)
	requireAppError(t, err, http.StatusNotFound)
}

func TestGetAllSessionsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	first, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)
	second, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)
	_, err = svc.CreateSession(ctx, 2)
	require.NoError(t, err)

	// Sending to the older session makes it the most recent one
	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: first.Id, Message: "bump"})
	require.NoError(t, err)

	sessions, err := svc.GetAllSessions(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, first.Id, sessions[0].Id)
	assert.Equal(t, second.Id, sessions[1].Id)
	assert.False(t, sessions[0].UpdatedAt.Before(sessions[1].UpdatedAt))

	limited, err := svc.GetAllSessions(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestDeleteSessionRemovesMessages(t *testing.T) {
	ctx := context.Background()
	publisher := &recordingPublisher{}
	svc, factory := newChatbotService(t, nil, publisher)

	keep, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)
	doomed, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	res, err := svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: doomed.Id, Message: "solve x"})
	require.NoError(t, err)

	deleted, err := svc.DeleteSession(ctx, 1, doomed.Id)
	require.NoError(t, err)
	require.NotNil(t, deleted.NextSessionId)
	assert.Equal(t, keep.Id, *deleted.NextSessionId)

	uow := factory.NewUnitOfWork(ctx)
	for _, id := range []uint{res.UserMessage.Id, res.AiMessage.Id} {
		msg, err := uow.ChatMessageRepository().FindOne(ctx, specification.ByID{ID: id})
		require.NoError(t, err)
		assert.Nil(t, msg)
	}

	_, err = svc.GetChatHistory(ctx, 1, doomed.Id)
	requireAppError(t, err, http.StatusNotFound)

	published := publisher.Events()
	require.Len(t, published, 2)
	assert.Equal(t, events.ChatSessionDeleted, published[1].Type)
	assert.Equal(t, doomed.Id, published[1].SessionId)
}

func TestDeleteLastSession(t *testing.T) {
	ctx := context.Background()
	svc, _ := newChatbotService(t, nil, nil)

	only, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.DeleteSession(ctx, 2, only.Id)
	requireAppError(t, err, http.StatusNotFound)

	deleted, err := svc.DeleteSession(ctx, 1, only.Id)
	require.NoError(t, err)
	assert.Nil(t, deleted.NextSessionId)

	_, err = svc.DeleteSession(ctx, 1, only.Id)
	requireAppError(t, err, http.StatusNotFound)
}

func TestPublishFailureDoesNotFailSend(t *testing.T) {
	ctx := context.Background()
	publisher := &recordingPublisher{err: errors.New("bus closed")}
	svc, _ := newChatbotService(t, nil, publisher)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "hello"})
	assert.NoError(t, err)
}

func TestSendChatRollsBackWhenAssistantWriteFails(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	factory := unitofwork.NewRepositoryFactory(db)
	svc := NewChatbotService(factory, tutor.NewKeywordEngine(nopLogger()), nil, nopLogger())

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:fail_assistant_insert", func(tx *gorm.DB) {
		if msg, ok := tx.Statement.Dest.(*model.ChatMessage); ok && msg.Role == string(entity.ChatRoleAssistant) {
			_ = tx.AddError(errors.New("disk full"))
		}
	}))

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "Can you help me with calculus?"})
	require.ErrorContains(t, err, "disk full")
	// Not an AppError, so the error middleware renders it as a 500
	var appErr *serverutils.AppError
	assert.False(t, errors.As(err, &appErr))

	uow := factory.NewUnitOfWork(ctx)
	count, err := uow.ChatMessageRepository().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	stored, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: created.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.DefaultChatSessionTitle, stored.Title)
}

func TestSendChatTouchesSessionWithoutRetitle(t *testing.T) {
	ctx := context.Background()
	svc, factory := newChatbotService(t, nil, nil)

	created, err := svc.CreateSession(ctx, 1)
	require.NoError(t, err)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "first question"})
	require.NoError(t, err)
	before, err := svc.GetChatHistory(ctx, 1, created.Id)
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, err = svc.SendChat(ctx, 1, &dto.SendChatRequest{SessionId: created.Id, Message: "second question"})
	require.NoError(t, err)
	after, err := svc.GetChatHistory(ctx, 1, created.Id)
	require.NoError(t, err)

	assert.Equal(t, "first question", after.Session.Title)
	assert.True(t, after.Session.UpdatedAt.After(before.Session.UpdatedAt))
	assert.False(t, after.Session.UpdatedAt.Before(after.Session.CreatedAt))

	// Touching again only moves updated_at
	manager := session.NewManager()
	uow := factory.NewUnitOfWork(ctx)
	chatSession, err := manager.VerifyChatSession(ctx, uow, 1, created.Id, false)
	require.NoError(t, err)
	require.NoError(t, manager.Touch(ctx, uow, chatSession))
	require.NoError(t, manager.Touch(ctx, uow, chatSession))

	touched, err := svc.GetChatHistory(ctx, 1, created.Id)
	require.NoError(t, err)
	require.Len(t, touched.Messages, len(after.Messages))
	for i := range after.Messages {
		assert.Equal(t, after.Messages[i].Id, touched.Messages[i].Id)
		assert.Equal(t, after.Messages[i].Content, touched.Messages[i].Content)
	}
	assert.Equal(t, after.Session.Title, touched.Session.Title)
	assert.False(t, touched.Session.UpdatedAt.Before(after.Session.UpdatedAt))
	assert.False(t, touched.Session.UpdatedAt.Before(touched.Session.CreatedAt))
}
