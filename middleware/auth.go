package middleware

import (
	"venue-booking/constants"
	"venue-booking/types"
	"venue-booking/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// IsAuthenticated verifies the bearer token and checks the role claim
// against the allowed list. Verified claims are stored on the request
// context under "user" for controllers.
func IsAuthenticated(roles []string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := utils.ExtractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: err.Error(),
				Data:    nil,
			})
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(types.ApiResponse{
				Status:  fiber.StatusUnauthorized,
				Message: "Invalid or expired token",
				Data:    nil,
			})
		}

		c.Locals("user", claims)

		if !roleAllowed(claims, roles) {
			return c.Status(fiber.StatusForbidden).JSON(types.ApiResponse{
				Status:  fiber.StatusForbidden,
				Message: "You do not have permission to access this resource",
				Data:    nil,
			})
		}

		return c.Next()
	}
}

// RequireRoles creates a middleware that admits only the listed roles.
func RequireRoles(roles ...string) fiber.Handler {
	return IsAuthenticated(roles)
}

// RequireAuthentication only requires a valid token without a specific role.
func RequireAuthentication() fiber.Handler {
	return IsAuthenticated([]string{constants.RoleAny})
}

func roleAllowed(claims jwt.MapClaims, roles []string) bool {
	role, _ := claims["role"].(string)
	for _, allowed := range roles {
		if allowed == constants.RoleAny || allowed == role {
			return true
		}
	}
	return false
}

// RoleFromContext returns the role claim set by IsAuthenticated.
func RoleFromContext(c *fiber.Ctx) string {
	claims, ok := c.Locals("user").(jwt.MapClaims)
	if !ok {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}
