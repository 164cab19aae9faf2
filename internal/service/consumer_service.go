package service

import (
	"context"
	"encoding/json"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/logger"
	"study-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

// ChatEventDelivery pushes an event to a user's live connections.
type ChatEventDelivery interface {
	SendChatEvent(ctx context.Context, userID uint, event dto.ChatEventMessage) error
}

type IConsumerService interface {
	// Consume subscribes and returns; processing stops when ctx is done.
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	forwarder  events.Publisher // nil when NATS is not configured
	delivery   ChatEventDelivery
	logger     logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	forwarder events.Publisher,
	delivery ChatEventDelivery,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		forwarder:  forwarder,
		delivery:   delivery,
		logger:     logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks: live delivery is best effort and a retry would
// duplicate what already reached other sinks.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var event dto.ChatEventMessage
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal chat event", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		return
	}

	if cs.forwarder != nil {
		if err := cs.forwarder.Publish(ctx, toBusEvent(msg.Payload, event)); err != nil {
			cs.logger.Warn("CONSUMER", "Failed to forward chat event", map[string]interface{}{
				"type":  event.Type,
				"error": err.Error(),
			})
		}
	}

	if cs.delivery != nil && event.UserId != nil {
		if err := cs.delivery.SendChatEvent(ctx, *event.UserId, event); err != nil {
			cs.logger.Warn("CONSUMER", "Failed to deliver chat event", map[string]interface{}{
				"type":    event.Type,
				"user_id": *event.UserId,
				"error":   err.Error(),
			})
		}
	}

	cs.logger.Debug("CONSUMER", "Chat event processed", map[string]interface{}{
		"type":       event.Type,
		"session_id": event.SessionId,
	})
}

func toBusEvent(raw []byte, event dto.ChatEventMessage) events.BaseEvent {
	var data map[string]interface{}
	_ = json.Unmarshal(raw, &data)
	return events.BaseEvent{
		Type:       event.Type,
		Data:       data,
		OccurredAt: event.OccurredAt,
	}
}
