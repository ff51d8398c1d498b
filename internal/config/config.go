// README: Config loader with env defaults for HTTP, LLM, Amadeus, and Redis settings.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	LLM struct {
		// Provider selects the completion backend: "openai" (default) or "gemini".
		Provider  string
		Model     string
		OpenAIKey string
		GeminiKey string
		// Temperature is nil when GLOB_TEMPERATURE is unset; the provider default applies.
		Temperature *float64
	}
	Amadeus struct {
		ClientID     string
		ClientSecret string
		// Env switches to the production base URL when set to "production".
		Env string
	}
	Redis struct {
		// Addr is optional; when set the hotel bearer token is cached in Redis
		// instead of process memory.
		Addr string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("GLOB_HTTP_ADDR", ":8080")
	cfg.LLM.Provider = envOrDefault("GLOB_LLM_PROVIDER", "openai")
	cfg.LLM.Model = envOrDefault("GLOB_MODEL", "gpt-5-mini")
	cfg.LLM.OpenAIKey = os.Getenv("OPENAI_API_KEY")
	cfg.LLM.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.LLM.Temperature = envOrNilFloat("GLOB_TEMPERATURE")
	cfg.Amadeus.ClientID = os.Getenv("AMADEUS_CLIENT_ID")
	cfg.Amadeus.ClientSecret = os.Getenv("AMADEUS_CLIENT_SECRET")
	cfg.Amadeus.Env = os.Getenv("AMADEUS_ENV")
	cfg.Redis.Addr = os.Getenv("GLOB_REDIS_ADDR")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrNilFloat(key string) *float64 {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &n
}
