package handlers

import (
	"time"

	"donfundy/internal/adapters/http/middleware"
	"donfundy/internal/i18n"
	"donfundy/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// I18nHandler handles locale endpoints
type I18nHandler struct{}

// NewI18nHandler creates a new i18n handler
func NewI18nHandler() *I18nHandler {
	return &I18nHandler{}
}

// LanguageRequest represents a language preference change
type LanguageRequest struct {
	Language string `json:"language"`
}

// Languages returns the supported locales
// @Summary List languages
// @Description List supported locales and the default
// @Tags I18n
// @Produce json
// @Success 200 {object} response.Response
// @Router /i18n/languages [get]
func (h *I18nHandler) Languages(c *fiber.Ctx) error {
	return response.Success(c, i18n.T(middleware.Lang(c), "language.list.success"), fiber.Map{
		"languages": i18n.Supported(),
		"default":   i18n.DefaultLanguage,
		"current":   middleware.Lang(c),
	})
}

// Bundle returns the full translation bundle for the request language
// @Summary Get translation bundle
// @Description Get every translation key for the resolved language
// @Tags I18n
// @Produce json
// @Param lang query string false "Locale tag"
// @Success 200 {object} response.Response
// @Router /i18n/bundle [get]
func (h *I18nHandler) Bundle(c *fiber.Ctx) error {
	lang := middleware.Lang(c)
	if requested := c.Query("lang"); requested != "" {
		lang = i18n.Resolve(requested)
	}

	return response.Success(c, i18n.T(lang, "language.list.success"), fiber.Map{
		"language": lang,
		"messages": i18n.Bundle(lang),
	})
}

// SetLanguage stores the caller's language preference in a cookie
// @Summary Set language
// @Description Persist the caller's locale choice
// @Tags I18n
// @Accept json
// @Produce json
// @Param body body LanguageRequest true "Language preference"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /i18n/language [put]
func (h *I18nHandler) SetLanguage(c *fiber.Ctx) error {
	var req LanguageRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, i18n.T(middleware.Lang(c), "error.invalid.request"))
	}

	if !i18n.IsSupported(req.Language) {
		return response.BadRequest(c, i18n.T(middleware.Lang(c), "error.language.invalid"))
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.LanguageCookie,
		Value:    req.Language,
		Path:     "/",
		Expires:  time.Now().AddDate(1, 0, 0),
		SameSite: "Lax",
	})

	return response.Success(c, i18n.T(req.Language, "language.updated"), fiber.Map{
		"language": req.Language,
	})
}
