package controller

import (
	"study-assistant-be/internal/dto"
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IThemeController interface {
	RegisterRoutes(r fiber.Router)
	GetTheme(ctx *fiber.Ctx) error
	ToggleTheme(ctx *fiber.Ctx) error
}

type themeController struct {
	service service.IThemeService
}

func NewThemeController(service service.IThemeService) IThemeController {
	return &themeController{service: service}
}

// Theme routes are keyed by the visitor cookie, not the bearer token.
func (c *themeController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/theme/v1")
	h.Get("", c.GetTheme)
	h.Post("toggle", c.ToggleTheme)
}

func (c *themeController) GetTheme(ctx *fiber.Ctx) error {
	res, err := c.service.GetTheme(ctx.UserContext(), serverutils.CurrentVisitorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *themeController) ToggleTheme(ctx *fiber.Ctx) error {
	var req dto.ToggleThemeRequest
	if err := ctx.App().Config().JSONDecoder(ctx.Body(), &req); err != nil {
		return serverutils.BadRequest(invalidJSONMessage)
	}

	res, err := c.service.ToggleTheme(ctx.UserContext(), serverutils.CurrentVisitorID(ctx), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}
