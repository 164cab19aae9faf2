package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/entity"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/repository/specification"
	"study-assistant-be/internal/repository/unitofwork"
	"study-assistant-be/pkg/events"
	"study-assistant-be/pkg/tutor"
	"study-assistant-be/pkg/tutor/history"
	"study-assistant-be/pkg/tutor/message"
	"study-assistant-be/pkg/tutor/session"
)

const timestampLayout = "15:04"

type IChatbotService interface {
	CreateSession(ctx context.Context, userId uint) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uint, limit int) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uint, sessionId uint) (*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uint, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uint, sessionId uint) (*dto.DeleteSessionResponse, error)
}

type chatbotService struct {
	uowFactory unitofwork.RepositoryFactory
	engine     *tutor.Engine
	publisher  IPublisherService
	logger     logger.ILogger

	messageFactory *message.Factory
	historyBuilder *history.Builder
	sessionManager *session.Manager
}

func NewChatbotService(
	uowFactory unitofwork.RepositoryFactory,
	engine *tutor.Engine,
	publisher IPublisherService,
	logger logger.ILogger,
) IChatbotService {
	return &chatbotService{
		uowFactory: uowFactory,
		engine:     engine,
		publisher:  publisher,
		logger:     logger,

		messageFactory: message.NewFactory(),
		historyBuilder: history.NewBuilder(history.DefaultWindow),
		sessionManager: session.NewManager(),
	}
}

func (cs *chatbotService) CreateSession(ctx context.Context, userId uint) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession := entity.ChatSession{
		UserId: &userId,
		Title:  entity.DefaultChatSessionTitle,
	}
	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: chatSession.Id, Title: chatSession.Title}, nil
}

// GetAllSessions lists the caller's sessions most recently updated first. A limit
// of zero returns all of them.
func (cs *chatbotService) GetAllSessions(ctx context.Context, userId uint, limit int) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAllRecent(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Limit{Count: limit},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, toSessionResponse(s))
	}
	return response, nil
}

func (cs *chatbotService) GetChatHistory(ctx context.Context, userId uint, sessionId uint) (*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId, false)
	if err != nil {
		return nil, mapSessionError(err)
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.ConversationOrder{},
	)
	if err != nil {
		return nil, err
	}

	messages := make([]*dto.ChatMessageResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		messages = append(messages, toMessageResponse(msg))
	}

	return &dto.GetChatHistoryResponse{
		Session:  *toSessionResponse(chatSession),
		Messages: messages,
	}, nil
}

// SendChat runs the whole exchange in one transaction holding the session row
// lock, so a failure leaves no half-written exchange and concurrent sends to
// one session are applied in arrival order.
func (cs *chatbotService) SendChat(ctx context.Context, userId uint, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	text := strings.TrimSpace(request.Message)
	if text == "" {
		return nil, serverutils.NewAppError(400, ErrEmptyMessage.Error(), ErrEmptyMessage)
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, request.SessionId, true)
	if err != nil {
		return nil, mapSessionError(err)
	}

	userMessage := cs.messageFactory.CreateUserMessage(chatSession.Id, text)
	if err := cs.messageFactory.Save(ctx, uow, userMessage); err != nil {
		return nil, err
	}

	first, err := cs.sessionManager.IsFirstMessage(ctx, uow, chatSession.Id)
	if err != nil {
		return nil, err
	}
	if first {
		cs.sessionManager.Retitle(chatSession, text)
	}

	conversation, err := cs.historyBuilder.Build(ctx, uow, chatSession.Id)
	if err != nil {
		return nil, err
	}

	reply := cs.engine.Reply(ctx, conversation, text)

	aiMessage := cs.messageFactory.CreateAssistantMessage(chatSession.Id, reply)
	if err := cs.messageFactory.Save(ctx, uow, aiMessage); err != nil {
		return nil, err
	}

	if err := cs.sessionManager.Touch(ctx, uow, chatSession); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.publish(ctx, dto.ChatEventMessage{
		Type:         events.ChatMessageExchanged,
		SessionId:    chatSession.Id,
		UserId:       chatSession.UserId,
		SessionTitle: chatSession.Title,
		Messages:     []*dto.ChatMessageResponse{toMessageResponse(userMessage), toMessageResponse(aiMessage)},
		OccurredAt:   time.Now(),
	})

	return &dto.SendChatResponse{
		Success: true,
		UserMessage: dto.SendChatMessage{
			Id:        userMessage.Id,
			Content:   userMessage.Content,
			Timestamp: userMessage.CreatedAt.Format(timestampLayout),
		},
		AiMessage: dto.SendChatMessage{
			Id:        aiMessage.Id,
			Content:   aiMessage.Content,
			Timestamp: aiMessage.CreatedAt.Format(timestampLayout),
		},
		SessionTitle: chatSession.Title,
	}, nil
}

// DeleteSession removes the session with its messages and points the caller at
// the most recently updated session left, if any.
func (cs *chatbotService) DeleteSession(ctx context.Context, userId uint, sessionId uint) (*dto.DeleteSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	chatSession, err := cs.sessionManager.VerifyChatSession(ctx, uow, userId, sessionId, true)
	if err != nil {
		return nil, mapSessionError(err)
	}

	// Explicit so dialects without enforced foreign keys lose the messages too
	if err := uow.ChatMessageRepository().DeleteByChatSessionId(ctx, chatSession.Id); err != nil {
		return nil, err
	}
	if err := uow.ChatSessionRepository().Delete(ctx, chatSession.Id); err != nil {
		return nil, err
	}

	remaining, err := uow.ChatSessionRepository().FindAllRecent(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.Limit{Count: 1},
	)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	cs.publish(ctx, dto.ChatEventMessage{
		Type:       events.ChatSessionDeleted,
		SessionId:  chatSession.Id,
		UserId:     chatSession.UserId,
		OccurredAt: time.Now(),
	})

	response := &dto.DeleteSessionResponse{}
	if len(remaining) > 0 {
		response.NextSessionId = &remaining[0].Id
	}
	return response, nil
}

// publish is best effort; the exchange is already committed.
func (cs *chatbotService) publish(ctx context.Context, event dto.ChatEventMessage) {
	if cs.publisher == nil {
		return
	}
	if err := cs.publisher.Publish(ctx, event); err != nil {
		cs.logger.Warn("CHATBOT", "Failed to publish chat event", map[string]interface{}{
			"type":       event.Type,
			"session_id": event.SessionId,
			"error":      err.Error(),
		})
	}
}

func mapSessionError(err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		return serverutils.NotFound("Chat session not found", err)
	}
	return err
}

func toSessionResponse(s *entity.ChatSession) *dto.GetAllSessionsResponse {
	return &dto.GetAllSessionsResponse{
		Id:        s.Id,
		Title:     s.Title,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toMessageResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	return &dto.ChatMessageResponse{
		Id:        msg.Id,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: msg.CreatedAt.Format(timestampLayout),
		CreatedAt: msg.CreatedAt,
	}
}
