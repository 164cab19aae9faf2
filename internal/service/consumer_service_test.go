package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"study-assistant-be/internal/dto"
	"study-assistant-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingDelivery struct {
	delivered chan dto.ChatEventMessage
}

func (d *recordingDelivery) SendChatEvent(_ context.Context, _ uint, event dto.ChatEventMessage) error {
	d.delivered <- event
	return nil
}

type recordingForwarder struct {
	mu     sync.Mutex
	events []events.Event
}

func (f *recordingForwarder) Publish(_ context.Context, event events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
	return nil
}

func (f *recordingForwarder) Types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	types := make([]string, 0, len(f.events))
	for _, e := range f.events {
		types = append(types, e.EventType())
	}
	return types
}

func TestConsumerDeliversPublishedEvents(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	delivery := &recordingDelivery{delivered: make(chan dto.ChatEventMessage, 4)}
	forwarder := &recordingForwarder{}

	consumer := NewConsumerService(pubSub, "CHAT_EVENTS", forwarder, delivery, nopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("CHAT_EVENTS", pubSub)

	userId := uint(3)
	require.NoError(t, publisher.Publish(ctx, dto.ChatEventMessage{
		Type:      events.ChatSessionDeleted,
		SessionId: 11,
		UserId:    &userId,
	}))
	// Events without an owner are forwarded but not delivered
	require.NoError(t, publisher.Publish(ctx, dto.ChatEventMessage{
		Type:      events.ChatMessageExchanged,
		SessionId: 12,
	}))

	select {
	case got := <-delivery.delivered:
		assert.Equal(t, events.ChatSessionDeleted, got.Type)
		assert.Equal(t, uint(11), got.SessionId)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered")
	}

	assert.Eventually(t, func() bool {
		return len(forwarder.Types()) == 2
	}, 2*time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{events.ChatSessionDeleted, events.ChatMessageExchanged}, forwarder.Types())
	assert.Empty(t, delivery.delivered)

	cancel()
	require.NoError(t, pubSub.Close())
}
