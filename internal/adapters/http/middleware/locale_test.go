package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"donfundy/internal/i18n"

	"github.com/gofiber/fiber/v2"
)

func localeApp() *fiber.App {
	app := fiber.New()
	app.Use(Locale())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(Lang(c))
	})
	return app
}

func TestLocaleDefaultsWithoutHints(t *testing.T) {
	app := localeApp()

	req := httptest.NewRequest("GET", "/", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != i18n.DefaultLanguage {
		t.Fatalf("lang = %q, want default", body)
	}
}

func TestLocaleFromAcceptLanguage(t *testing.T) {
	app := localeApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.9")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != i18n.LanguageSpanish {
		t.Fatalf("lang = %q, want %q", body, i18n.LanguageSpanish)
	}
}

func TestLocaleCookieWinsOverHeader(t *testing.T) {
	app := localeApp()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept-Language", "es-ES")
	req.AddCookie(&http.Cookie{Name: LanguageCookie, Value: i18n.LanguageEnglish})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != i18n.LanguageEnglish {
		t.Fatalf("lang = %q, want %q", body, i18n.LanguageEnglish)
	}
}
