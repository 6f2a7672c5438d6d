package routes

import (
	"testing"
	"time"

	"donfundy/internal/cache"
	"donfundy/internal/config"

	"github.com/gofiber/fiber/v2"
)

func TestSetupRegistersNamedRoutes(t *testing.T) {
	store, err := cache.NewStore(100, time.Minute)
	if err != nil {
		t.Fatalf("cache store: %v", err)
	}

	app := fiber.New()
	cfg := &config.Config{ReportDir: t.TempDir()}
	Setup(app, nil, cfg, store)

	want := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/api/v1/campaigns/my-campaigns"},
		{fiber.MethodPost, "/api/v1/bulk-donations/upload"},
		{fiber.MethodPost, "/api/v1/donors"},
		{fiber.MethodGet, "/api/v1/donors/user/:userId"},
		{fiber.MethodGet, "/api/v1/donors/me"},
		{fiber.MethodPost, "/api/v1/reports/generate"},
		{fiber.MethodGet, "/api/v1/reports/campaigns"},
	}

	routes := app.GetRoutes()
	for _, w := range want {
		found := false
		for _, r := range routes {
			if r.Method == w.method && r.Path == w.path {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("route not registered: %s %s", w.method, w.path)
		}
	}
}
