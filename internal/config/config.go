package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port        string
	Environment string

	LLMProvider     string
	OpenAIAPIKey    string
	AnthropicAPIKey string

	FinnhubAPIKey string

	TelnyxAPIKey       string
	TelnyxPhoneNumber  string
	TelnyxConnectionID string

	UniversePath   string
	MinSignalScore int

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load builds the configuration from environment variables. A missing
// credential never fails startup; it switches the owning component
// into its degraded or disabled mode.
func Load() *Config {
	cfg := &Config{
		Port:           "8080",
		Environment:    "development",
		LLMProvider:    "openai",
		MinSignalScore: 20,
		RateLimitRPS:   10,
		RateLimitBurst: 20,
	}

	if val := os.Getenv("PORT"); val != "" {
		cfg.Port = val
	}
	if val := os.Getenv("APP_ENV"); val != "" {
		cfg.Environment = val
	}
	if val := os.Getenv("LLM_PROVIDER"); val != "" {
		cfg.LLMProvider = val
	}
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.AnthropicAPIKey = os.Getenv("ANTHROPIC_API_KEY")
	cfg.FinnhubAPIKey = os.Getenv("FINNHUB_API_KEY")
	cfg.TelnyxAPIKey = os.Getenv("TELNYX_API_KEY")
	cfg.TelnyxPhoneNumber = os.Getenv("TELNYX_PHONE_NUMBER")
	cfg.TelnyxConnectionID = os.Getenv("TELNYX_CONNECTION_ID")
	cfg.UniversePath = os.Getenv("UNIVERSE_PATH")

	if val := os.Getenv("MIN_SIGNAL_SCORE"); val != "" {
		if score, err := strconv.Atoi(val); err == nil {
			cfg.MinSignalScore = score
		}
	}
	if val := os.Getenv("RATE_LIMIT_RPS"); val != "" {
		if rps, err := strconv.ParseFloat(val, 64); err == nil && rps > 0 {
			cfg.RateLimitRPS = rps
		}
	}
	if val := os.Getenv("RATE_LIMIT_BURST"); val != "" {
		if burst, err := strconv.Atoi(val); err == nil && burst > 0 {
			cfg.RateLimitBurst = burst
		}
	}

	return cfg
}

func (c *Config) VoiceEnabled() bool {
	return c.TelnyxAPIKey != ""
}
