package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// userContextKey is the Locals key AuthRequired stores the resolved user
// under.
const userContextKey = "current_user"

// AuthRequired resolves the bearer token to an active user and stores it in
// the request context. Missing, malformed, or expired tokens and unknown
// users yield Unauthorized; inactive accounts yield Forbidden.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return apperrors.New(apperrors.KindUnauthorized, "Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return apperrors.New(apperrors.KindUnauthorized, "Authorization header format must be 'Bearer <token>'")
		}

		email, err := authService.ValidateToken(parts[1])
		if err != nil {
			return apperrors.Wrap(apperrors.KindUnauthorized, "invalid or expired token", err)
		}

		user, err := userRepo.GetByEmail(email)
		if err != nil {
			return apperrors.New(apperrors.KindUnauthorized, "user not found")
		}
		if !user.IsActive {
			return apperrors.New(apperrors.KindForbidden, "user is inactive")
		}

		c.Locals(userContextKey, user)
		return c.Next()
	}
}

// AdminRequired additionally requires the resolved user to be an
// administrator. It must be chained after AuthRequired.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != models.RoleAdmin {
			return apperrors.New(apperrors.KindForbidden, "admin access required")
		}
		return c.Next()
	}
}

// CurrentUser returns the user stored by AuthRequired, or nil when the
// request is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userContextKey).(*models.User)
	return user
}
