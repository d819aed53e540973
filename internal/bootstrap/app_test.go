package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hustlecv-backend/internal/shared/config"
)

func TestBuildDevFallsBackToMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := Build(config.Config{
		Port:            "0",
		Env:             "dev",
		CORSAllowOrigin: []string{"http://localhost:5173"},
	})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if app.DB != nil {
		t.Fatalf("expected nil DB without DATABASE_URL")
	}
	if app.ProfilesRepo == nil || app.ProfilesHandler == nil {
		t.Fatalf("expected repo and handler wired")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	app.Router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 from healthz, got %d", resp.Code)
	}
}

func TestBuildProductionRequiresDatabaseURL(t *testing.T) {
	if _, err := Build(config.Config{Env: "production"}); err == nil {
		t.Fatalf("expected error without DATABASE_URL in production")
	}
}

func TestBuildWithoutAPIKeyUsesPlaceholder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	app, err := Build(config.Config{Env: "dev", LLMProvider: "openrouter"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	defer app.Close()

	if _, terr := app.LLM.TransformExperience(context.Background(), "raw"); terr == nil {
		t.Fatalf("expected placeholder client to error")
	}
}
