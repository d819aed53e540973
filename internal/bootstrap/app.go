package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"hustlecv-backend/internal/llm"
	"hustlecv-backend/internal/llm/openrouter"
	"hustlecv-backend/internal/profiles"
	"hustlecv-backend/internal/shared/config"
	"hustlecv-backend/internal/shared/server"
	"hustlecv-backend/internal/shared/storage/db"
)

// App holds shared dependencies constructed at startup.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	ProfilesRepo    profiles.Repo
	LLM             llm.Client
	ProfilesService *profiles.Service
	ProfilesHandler *profiles.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	var repo profiles.Repo
	if sqlDB != nil {
		repo = &profiles.PGRepo{DB: sqlDB}
	} else {
		repo = profiles.NewMemoryRepo()
	}

	svc := profiles.NewService(repo, llmClient)
	handler := profiles.NewHandler(svc)

	app := &App{
		Config:          cfg,
		DB:              sqlDB,
		ProfilesRepo:    repo,
		LLM:             llmClient,
		ProfilesService: svc,
		ProfilesHandler: handler,
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:         cfg,
		ProfileHandler: handler,
	})

	return app, nil
}

// Close releases resources held by the app.
func (a *App) Close() {
	if a != nil && a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLMProvider == "openrouter" && strings.TrimSpace(cfg.OpenRouterAPIKey) != "" {
		return openrouter.NewClient(cfg.OpenRouterAPIKey, cfg.LLMModel, cfg.OpenRouterBaseURL)
	}
	if !isDevLike(cfg.Env) {
		log.Printf("bootstrap: no LLM provider configured; generations will degrade to partial_success")
	}
	return llm.PlaceholderClient{}, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
