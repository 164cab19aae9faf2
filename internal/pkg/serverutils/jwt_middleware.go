package serverutils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const userIdLocal = "user_id"

var errMissingToken = errors.New("missing token")

func JwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := userIdFromHeader(ctx, secret)
		if errors.Is(err, errMissingToken) {
			return Unauthorized("Missing token")
		}
		if err != nil {
			return Unauthorized("Invalid token")
		}
		ctx.Locals(userIdLocal, userId)
		return ctx.Next()
	}
}

// OptionalJwtMiddleware identifies the caller when a valid token is present and
// lets anonymous requests through otherwise.
func OptionalJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if userId, err := userIdFromHeader(ctx, secret); err == nil {
			ctx.Locals(userIdLocal, userId)
		}
		return ctx.Next()
	}
}

// CurrentUserID reads the id stored by the JWT middlewares.
func CurrentUserID(ctx *fiber.Ctx) (uint, bool) {
	userId, ok := ctx.Locals(userIdLocal).(uint)
	return userId, ok
}

func userIdFromHeader(ctx *fiber.Ctx, secret string) (uint, error) {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	tokenStr, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || tokenStr == "" {
		return 0, errMissingToken
	}
	return ParseUserID(tokenStr, secret)
}

// ParseUserID validates an HS256 token and extracts its numeric user_id claim.
func ParseUserID(tokenStr, secret string) (uint, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return 0, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid claims")
	}

	switch v := claims[userIdLocal].(type) {
	case float64:
		if v <= 0 || v != float64(uint(v)) {
			return 0, fmt.Errorf("invalid user_id claim %v", v)
		}
		return uint(v), nil
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil || id == 0 {
			return 0, fmt.Errorf("invalid user_id claim %q", v)
		}
		return uint(id), nil
	default:
		return 0, errors.New("missing user_id claim")
	}
}

// IssueToken signs a token for userId. Identity is owned by another service;
// this exists for local development and tests.
func IssueToken(secret string, userId uint, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		userIdLocal: userId,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
