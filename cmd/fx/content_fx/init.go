package content_fx

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"

	"atchub/pkg/utils"
)

var Module = fx.Provide(
	ProvideContentClient,
	ProvideProviderTimeout,
)

// ContentConfig holds configuration for generative content clients
type ContentConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideContentClient creates a content client based on environment variables
func ProvideContentClient() (utils.ContentClientInterface, error) {
	config := getContentConfig()

	log.Printf("Initializing %s content client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIContentClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiContentClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported content provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

// ProvideProviderTimeout is the per-call budget for every external content call.
// A hung provider resolves to a failure state instead of a stuck screen.
func ProvideProviderTimeout() time.Duration {
	seconds, err := strconv.Atoi(getEnvWithDefault("PROVIDER_TIMEOUT_SECONDS", "20"))
	if err != nil || seconds <= 0 {
		seconds = 20
	}
	return time.Duration(seconds) * time.Second
}

// getContentConfig reads configuration from environment variables
func getContentConfig() ContentConfig {
	provider := getEnvWithDefault("CONTENT_PROVIDER", "gemini")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ContentConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
