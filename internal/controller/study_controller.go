package controller

import (
	"study-assistant-be/internal/pkg/serverutils"
	"study-assistant-be/internal/service"
	"study-assistant-be/pkg/tutor"

	"github.com/gofiber/fiber/v2"
)

type IStudyController interface {
	RegisterRoutes(r fiber.Router)
	GetStudyTips(ctx *fiber.Ctx) error
	GetTopics(ctx *fiber.Ctx) error
	Home(ctx *fiber.Ctx) error
	About(ctx *fiber.Ctx) error
}

type studyController struct {
	service   service.IStudyService
	jwtSecret string
}

func NewStudyController(service service.IStudyService, jwtSecret string) IStudyController {
	return &studyController{
		service:   service,
		jwtSecret: jwtSecret,
	}
}

func (c *studyController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/study/v1")
	h.Use(serverutils.JwtMiddleware(c.jwtSecret))
	h.Get("tips", c.GetStudyTips)
	h.Get("topics", c.GetTopics)

	r.Get("/home", serverutils.OptionalJwtMiddleware(c.jwtSecret), c.Home)
	r.Get("/about", c.About)
}

func (c *studyController) GetStudyTips(ctx *fiber.Ctx) error {
	subject := ctx.Query("subject", tutor.DefaultSubject)
	return ctx.JSON(c.service.GetStudyTips(ctx.UserContext(), subject))
}

func (c *studyController) GetTopics(ctx *fiber.Ctx) error {
	res, err := c.service.GetTopics(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get study topics", res))
}

func (c *studyController) Home(ctx *fiber.Ctx) error {
	var userId *uint
	if id, ok := serverutils.CurrentUserID(ctx); ok {
		userId = &id
	}

	res, err := c.service.GetHome(ctx.UserContext(), serverutils.CurrentVisitorID(ctx), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get home", res))
}

func (c *studyController) About(ctx *fiber.Ctx) error {
	res, err := c.service.GetAbout(ctx.UserContext(), serverutils.CurrentVisitorID(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get about", res))
}
