package controller

import (
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const invalidJSONMessage = "Invalid JSON data"

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	CreateSession(ctx *fiber.Ctx) error
	GetAllSessions(ctx *fiber.Ctx) error
	GetChatHistory(ctx *fiber.Ctx) error
	SendChat(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
}

type chatbotController struct {
	service      service.IChatbotService
	jwtSecret    string
	sidebarLimit int
}

func NewChatbotController(service service.IChatbotService, jwtSecret string, sidebarLimit int) IChatbotController {
	return &chatbotController{
		service:      service,
		jwtSecret:    jwtSecret,
		sidebarLimit: sidebarLimit,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chatbot/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Post("send", c.SendChat)
	h.Post("session", c.CreateSession)
	h.Get("sessions", c.GetAllSessions)
	h.Get("sessions/:id", c.GetChatHistory)
	h.Delete("sessions/:id", c.DeleteSession)
}

func (c *chatbotController) CreateSession(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	res, err := c.service.CreateSession(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create session", res))
}

// GetAllSessions defaults to the sidebar size; ?limit=0 lists everything.
func (c *chatbotController) GetAllSessions(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	query := dto.ListSessionsQuery{Limit: ctx.QueryInt("limit", c.sidebarLimit)}
	if err := serverutils.ValidateRequest(query); err != nil {
		return err
	}

	res, err := c.service.GetAllSessions(ctx.UserContext(), userId, query.Limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get all sessions", res))
}

func (c *chatbotController) GetChatHistory(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	params, err := parseSessionParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetChatHistory(ctx.UserContext(), userId, params.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get chat history", res))
}

// SendChat decodes the body regardless of content type; any decode failure is a 400.
func (c *chatbotController) SendChat(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	var req dto.SendChatRequest
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), &req); err != nil {
		return serverutils.BadRequest(invalidJSONMessage)
	}

	res, err := c.service.SendChat(ctx.UserContext(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) DeleteSession(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	params, err := parseSessionParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.DeleteSession(ctx.UserContext(), userId, params.Id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete session", res))
}

func parseSessionParams(ctx *fiber.Ctx) (*dto.SessionPathParams, error) {
	var params dto.SessionPathParams
	if err := ctx.ParamsParser(&params); err != nil {
		return nil, serverutils.BadRequest("Invalid session id")
	}
	if err := serverutils.ValidateRequest(params); err != nil {
		return nil, err
	}
	return &params, nil
}
