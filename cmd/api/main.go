package main

import (
	"log"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sherlok/internal/agent"
	"sherlok/internal/config"
	"sherlok/internal/handler"
	"sherlok/internal/session"
	"sherlok/internal/universe"
	"sherlok/pkg/llm"
	"sherlok/pkg/marketdata"
	"sherlok/pkg/voice"
)

func main() {

	godotenv.Load()

	cfg := config.Load()

	u, err := universe.Load(cfg.UniversePath)
	if err != nil {
		log.Fatalf("error loading ticker universe: %v", err)
	}

	client := llm.NewFromConfig(cfg.LLMProvider, cfg.OpenAIAPIKey, cfg.AnthropicAPIKey)
	if client == nil {
		slog.Warn("no LLM credential configured, analysis runs in degraded mode")
	}

	accessor := marketdata.NewAccessor(cfg.FinnhubAPIKey)
	if cfg.FinnhubAPIKey == "" {
		slog.Warn("no market data credential configured, serving fallback data")
	}

	relay := voice.NewRelay(cfg.TelnyxAPIKey, cfg.TelnyxPhoneNumber, cfg.TelnyxConnectionID)
	if !relay.Enabled() {
		slog.Warn("no telephony credential configured, voice relay disabled")
	}

	researcher := agent.NewResearchAgent(accessor, client)
	scanner := agent.NewScanner(accessor, u, cfg.MinSignalScore)
	conversation := agent.NewConversationAgent(client, accessor, session.NewStore())

	researchHandler := handler.NewResearchHandler(researcher, scanner, relay.Enabled())
	chatHandler := handler.NewChatHandler(conversation)
	voiceHandler := handler.NewVoiceHandler(relay)

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	api := r.Group("/api", handler.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	api.GET("/health", researchHandler.GetHealth)
	api.POST("/analyze", researchHandler.Analyze)
	api.POST("/scan", researchHandler.Scan)
	api.POST("/summarize", researchHandler.Summarize)
	api.POST("/insights", researchHandler.Insights)
	api.POST("/metrics", researchHandler.Metrics)
	api.POST("/chat", chatHandler.Chat)
	api.POST("/reset", chatHandler.Reset)
	api.POST("/voice/webhook", voiceHandler.Webhook)
	api.POST("/voice/call", voiceHandler.Call)
	api.POST("/voice/sms", voiceHandler.SMSAlert)

	slog.Info("starting server", "port", cfg.Port, "environment", cfg.Environment, "voice_enabled", relay.Enabled())

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
