package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel carries chat events between instances.
const ClusterChannel = "cluster_chat_events"

type envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type clusterMessage struct {
	Origin       string          `json:"origin"`
	TargetUserID uint            `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

type Hub struct {
	// UserID -> connected clients (multi-device)
	clients map[uint][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Optional, fans events out to other instances
	rdb *redis.Client

	// instanceID lets the hub ignore its own cluster messages
	instanceID string

	logger logger.ILogger

	// closed when Run returns
	done chan struct{}
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uint][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
		done:       make(chan struct{}),
	}
}

// Run serves register/unregister requests until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.remove(client)

		case <-ctx.Done():
			h.mu.Lock()
			for userID, clients := range h.clients {
				for _, c := range clients {
					close(c.Send)
				}
				delete(h.clients, userID)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Register returns false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.clients[client.UserID]
	if !ok {
		return
	}
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			close(client.Send)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
		h.logger.Info("Hub", "Client completely unregistered", map[string]interface{}{"user_id": client.UserID})
	}
}

// ClientCount is the number of local connections for a user.
func (h *Hub) ClientCount(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// SendChatEvent delivers the event to the user's local connections and publishes
// it for the other instances.
func (h *Hub) SendChatEvent(ctx context.Context, userID uint, event dto.ChatEventMessage) error {
	data, err := json.Marshal(envelope{Type: "chat_event", Data: event})
	if err != nil {
		return err
	}

	h.deliver(userID, data)

	if h.rdb != nil {
		payload, err := json.Marshal(clusterMessage{
			Origin:       h.instanceID,
			TargetUserID: userID,
			Message:      data,
		})
		if err != nil {
			return err
		}
		return h.rdb.Publish(ctx, ClusterChannel, payload).Err()
	}
	return nil
}

// deliver never blocks; a client with a full buffer misses the message.
func (h *Hub) deliver(userID uint, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients[userID] {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"user_id": userID})
		}
	}
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var payload clusterMessage
			if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
				h.logger.Warn("Hub", "Cluster message parse error", map[string]interface{}{"error": err.Error()})
				continue
			}
			if payload.Origin == h.instanceID {
				continue
			}
			h.deliver(payload.TargetUserID, payload.Message)
		}
	}
}
