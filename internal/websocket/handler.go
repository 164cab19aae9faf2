package websocket

import (
	"study-assistant-be/internal/pkg/serverutils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// ServeWs pumps one connection until the peer goes away.
func ServeWs(hub *Hub, c *websocket.Conn, userID uint) {
	client := NewClient(hub, c, userID)
	if !hub.Register(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

// Handler authenticates the upgrade request and attaches the connection to the hub.
type Handler struct {
	hub       *Hub
	jwtSecret string
}

func NewHandler(hub *Hub, jwtSecret string) *Handler {
	return &Handler{hub: hub, jwtSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws", h.Upgrade)
}

// Upgrade accepts the token as ?token= (browsers) or a bearer header (tools).
func (h *Handler) Upgrade(ctx *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(ctx) {
		return fiber.ErrUpgradeRequired
	}

	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		if auth := ctx.Get(fiber.HeaderAuthorization); len(auth) > 7 && auth[:7] == "Bearer " {
			tokenStr = auth[7:]
		}
	}
	if tokenStr == "" {
		return serverutils.Unauthorized("Missing token")
	}

	userID, err := serverutils.ParseUserID(tokenStr, h.jwtSecret)
	if err != nil {
		h.hub.logger.Warn("WebSocket", "Invalid token in handshake", map[string]interface{}{"error": err.Error()})
		return serverutils.Unauthorized("Invalid token")
	}

	return websocket.New(func(c *websocket.Conn) {
		h.hub.logger.Info("WebSocket", "Session started", map[string]interface{}{"user_id": userID})
		ServeWs(h.hub, c, userID)
		h.hub.logger.Info("WebSocket", "Session ended", map[string]interface{}{"user_id": userID})
	})(ctx)
}
