package serverutils

import (
	"errors"

	"study-assistant-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const MethodNotAllowedMessage = "Invalid request method"

// ErrorHandlerMiddleware renders any error returned down the chain as {error: message}.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}
		return WriteError(ctx, err, log)
	}
}

// WriteError is also installed as the fiber ErrorHandler for errors raised
// before the middleware runs.
func WriteError(ctx *fiber.Ctx, err error, log logger.ILogger) error {
	code := fiber.StatusInternalServerError
	message := err.Error()

	var appErr *AppError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		code = appErr.Code
		message = appErr.Message
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
		if code == fiber.StatusMethodNotAllowed {
			message = MethodNotAllowedMessage
		}
	}

	if code >= fiber.StatusInternalServerError {
		log.Error("HTTP", "Request failed", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
	}

	return ctx.Status(code).JSON(ErrorResponse(message))
}

func NewFiberErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		return WriteError(ctx, err, log)
	}
}
