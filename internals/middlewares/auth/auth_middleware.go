// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/constants"
)

// AuthMiddleware verifies the session token and stores the identity claims
// on the request context. The role claim was resolved once at login; no
// per-request profile lookups happen here.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT secret")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid token")
		}

		if err := validateTokenExpiry(claims); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid user ID")
		}
		c.Locals("user_id", userID.String())

		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		role := constants.RoleUnassigned
		if r, ok := claims["role"].(string); ok && r != "" {
			role = r
		}
		c.Locals("role", role)

		return c.Next()
	}
}

// OptionalAuthMiddleware fills the identity locals when a valid token is
// presented and lets the request through anonymously otherwise. Public pages
// use it to personalize content without requiring a session.
func OptionalAuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil || configs.JWTSecret == "" {
			return c.Next()
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(configs.JWTSecret), nil
		}); err != nil {
			return c.Next()
		}
		if err := validateTokenExpiry(claims); err != nil {
			return c.Next()
		}
		userID, err := extractUserID(claims)
		if err != nil {
			return c.Next()
		}

		c.Locals("user_id", userID.String())
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		if r, ok := claims["role"].(string); ok && r != "" {
			c.Locals("role", r)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")), nil
	}
	// cookie fallback so browser sessions work without a JS token store
	if tok := c.Cookies("access_token"); tok != "" {
		return tok, nil
	}
	return "", errors.New("missing or malformed Authorization header")
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	expVal, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	if time.Now().After(time.Unix(int64(expFloat), 0)) {
		return errors.New("token expired")
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}
