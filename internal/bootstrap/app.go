package bootstrap

import (
	"videopick-backend/internal/llm"
	"videopick-backend/internal/llm/gemini"
	"videopick-backend/internal/llm/groq"
	"videopick-backend/internal/recommendations"
	"videopick-backend/internal/shared/config"
	"videopick-backend/internal/shared/telemetry"
	"videopick-backend/internal/youtube"
)

// App holds shared dependencies built once at startup.
type App struct {
	Config                config.Config
	Fetcher               *youtube.Client
	LLM                   llm.Client
	RecommendationService *recommendations.Service
	RecommendationHandler *recommendations.Handler
}

// Build wires dependencies from configuration. Provider selection happens
// here, once; nothing downstream branches on provider identity.
func Build(cfg config.Config) *App {
	var client llm.Client
	switch cfg.LLMProvider {
	case "groq":
		client = groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
	default:
		client = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	if (cfg.LLMProvider == "groq" && cfg.GroqAPIKey == "") ||
		(cfg.LLMProvider == "gemini" && cfg.GeminiAPIKey == "") {
		telemetry.Warn("llm.credential_missing", map[string]any{
			"provider": cfg.LLMProvider,
		})
	}

	fetcher := youtube.NewClient(cfg.YouTubeAPIKey)
	svc := recommendations.NewService(fetcher, client, cfg.LLMProvider)

	return &App{
		Config:                cfg,
		Fetcher:               fetcher,
		LLM:                   client,
		RecommendationService: svc,
		RecommendationHandler: recommendations.NewHandler(svc),
	}
}
