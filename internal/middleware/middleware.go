package middleware

import (
	"strings"

	"Household-Planner-Backend/domain"
	"Household-Planner-Backend/internal/api/presenters"
	"Household-Planner-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		OwnerMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-User-ID",
	})
}

// OwnerMiddleware resolves the owner identity required for mutations on
// owned collections. Accepted forms: a bearer token whose claims carry the
// owner id, or a plain X-User-ID header with a UUID. Absent or invalid
// identity yields 401.
func (m *middleware) OwnerMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if auth := c.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			userID, err := jwtService.GetUserIDByToken(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
			}
			c.Locals("user_id", userID)
			return c.Next()
		}

		header := c.Get("X-User-ID")
		if header == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedOwnerRequired, domain.ErrOwnerRequired)
		}
		if _, err := uuid.Parse(header); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedOwnerRequired, domain.ErrParseUUID)
		}

		c.Locals("user_id", header)
		return c.Next()
	}
}
