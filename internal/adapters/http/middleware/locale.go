package middleware

import (
	"donfundy/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

// LanguageCookie is the cookie carrying the caller's locale choice
const LanguageCookie = "app-language"

// Locale resolves the request language and stores it in locals. The
// cookie wins over the Accept-Language header; anything unsupported
// falls back to the default locale.
func Locale() fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang := c.Cookies(LanguageCookie)
		if lang == "" {
			lang = c.Get(fiber.HeaderAcceptLanguage)
		}

		c.Locals("lang", i18n.Resolve(lang))
		return c.Next()
	}
}

// Lang returns the resolved request language
func Lang(c *fiber.Ctx) string {
	if lang, ok := c.Locals("lang").(string); ok && lang != "" {
		return lang
	}
	return i18n.DefaultLanguage
}
