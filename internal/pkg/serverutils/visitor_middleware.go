package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	VisitorCookieName = "visitor_id"
	visitorIdLocal    = "visitor_id"
)

// VisitorMiddleware makes sure every caller carries a visitor token cookie.
// Preferences such as the theme are keyed by it.
func VisitorMiddleware(maxAge time.Duration) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		visitorId := ctx.Cookies(VisitorCookieName)
		if _, err := uuid.Parse(visitorId); err != nil {
			visitorId = uuid.NewString()
			ctx.Cookie(&fiber.Cookie{
				Name:     VisitorCookieName,
				Value:    visitorId,
				Path:     "/",
				MaxAge:   int(maxAge.Seconds()),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		ctx.Locals(visitorIdLocal, visitorId)
		return ctx.Next()
	}
}

func CurrentVisitorID(ctx *fiber.Ctx) string {
	visitorId, _ := ctx.Locals(visitorIdLocal).(string)
	return visitorId
}
