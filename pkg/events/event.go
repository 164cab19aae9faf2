package events

import (
	"context"
	"time"
)

// Chat event types, also the NATS subject suffix.
const (
	ChatMessageExchanged = "CHAT_MESSAGE_EXCHANGED"
	ChatSessionDeleted   = "CHAT_SESSION_DELETED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_SESSION_DELETED").
	EventType() string

	Payload() map[string]interface{}

	Timestamp() time.Time
}

// Publisher ships events to a bus outside the process.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
