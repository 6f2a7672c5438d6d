package middleware

import (
	"strings"

	"donfundy/internal/adapters/persistence/models"
	"donfundy/internal/config"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/jwt"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Capability is the access level of a request, decided once when the
// token is checked and carried in locals for the rest of the pipeline.
type Capability string

const (
	CapabilityAnonymous Capability = "ANONYMOUS"
	CapabilityUser      Capability = "USER"
	CapabilityAdmin     Capability = "ADMIN"
)

// CapabilityForRole maps a token role onto a capability
func CapabilityForRole(role string) Capability {
	switch role {
	case models.RoleAdmin:
		return CapabilityAdmin
	case models.RoleUser:
		return CapabilityUser
	}
	return CapabilityAnonymous
}

func extractToken(c *fiber.Ctx) string {
	// Cookie first, then Authorization header
	if token := c.Cookies("access_token"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

func setIdentity(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals("userID", claims.UserID)
	c.Locals("email", claims.Email)
	c.Locals("role", claims.Role)
	c.Locals("capability", CapabilityForRole(claims.Role))
}

// AuthMiddleware requires a valid access token
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := Lang(c)

		accessToken := extractToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, i18n.T(lang, "error.token.required"))
		}

		claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				return response.Unauthorized(c, i18n.T(lang, "error.token.expired"))
			}
			return response.Unauthorized(c, i18n.T(lang, "error.token.invalid"))
		}

		setIdentity(c, claims)
		return c.Next()
	}
}

// RequireCapability allows only requests holding one of the capabilities
func RequireCapability(allowed ...Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		capability, ok := c.Locals("capability").(Capability)
		if !ok {
			return response.Unauthorized(c, i18n.T(Lang(c), "error.unauthorized"))
		}

		for _, a := range allowed {
			if capability == a {
				return c.Next()
			}
		}

		return response.Forbidden(c, i18n.T(Lang(c), "error.forbidden"))
	}
}

// AdminOnly allows only the admin capability
func AdminOnly() fiber.Handler {
	return RequireCapability(CapabilityAdmin)
}

// OptionalAuth sets identity when a valid token is present but never
// rejects the request. Anonymous requests continue with the anonymous
// capability.
func OptionalAuth(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("capability", CapabilityAnonymous)

		if accessToken := extractToken(c); accessToken != "" {
			claims, err := jwt.ValidateAccessToken(accessToken, cfg.JWT.Secret)
			if err == nil {
				setIdentity(c, claims)
			}
		}

		return c.Next()
	}
}

// IsAdmin reports whether the request carries the admin capability
func IsAdmin(c *fiber.Ctx) bool {
	capability, ok := c.Locals("capability").(Capability)
	return ok && capability == CapabilityAdmin
}

// UserID returns the authenticated user ID, or zero when anonymous
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("userID").(uint); ok {
		return id
	}
	return 0
}
