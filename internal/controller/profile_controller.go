package controller

import (
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProfileController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
}

type profileController struct {
	service   service.IProfileService
	jwtSecret string
}

func NewProfileController(service service.IProfileService, jwtSecret string) IProfileController {
	return &profileController{
		service:   service,
		jwtSecret: jwtSecret,
	}
}

func (c *profileController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/profile/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("", c.GetProfile)
}

func (c *profileController) GetProfile(ctx *fiber.Ctx) error {
	userId, _ := serverutils.CurrentUserID(ctx)

	res, err := c.service.GetProfile(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}
