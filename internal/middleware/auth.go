// Package middleware provides HTTP middleware for the fiber application,
// currently bearer-token authentication for the admin surface.
package middleware

import (
	"log"
	"strings"

	"antifraud/internal/models"
	"antifraud/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AdminAuth validates the Bearer token on admin routes and requires the
// admin role claim. Claims are stored in the request context under
// "claims" for downstream handlers.
func AdminAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return utils.Unauthorized(c, "missing authorization header")
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return utils.Unauthorized(c, "invalid authorization format")
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := jwt.ParseWithClaims(tokenString, &models.ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Printf("token validation error: %v", err)
			return utils.Unauthorized(c, "invalid token")
		}

		claims, ok := token.Claims.(*models.ServiceClaims)
		if !ok {
			return utils.Unauthorized(c, "invalid claims")
		}
		if !claims.IsAdmin() {
			return utils.Forbidden(c, "insufficient permissions")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
