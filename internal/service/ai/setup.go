package ai

import (
	"log/slog"

	"akademikform/internal/config"
	"akademikform/internal/service/ai/providers/anthropic"
	"akademikform/internal/service/ai/providers/lorem"
)

// SetupProvider resolves the upstream text provider from configuration.
// With an API key the Anthropic provider is used; without one, dev
// environments fall back to the offline lorem provider and anything else
// runs with no provider at all (generation endpoints then return errors,
// the rest of the API stays up).
func SetupProvider(cfg *config.Config, logger *slog.Logger) TextProvider {
	if cfg.AnthropicAPIKey != "" {
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey, cfg.DefaultModel)
		if err != nil {
			logger.Error("anthropic provider setup failed", "error", err)
			return nil
		}
		logger.Info("provider available", "name", provider.Name(), "model", cfg.DefaultModel)
		return provider
	}

	if cfg.Environment == "dev" {
		logger.Warn("ANTHROPIC_API_KEY not set - using offline lorem provider")
		return lorem.NewProvider()
	}

	logger.Warn("ANTHROPIC_API_KEY not set - text generation disabled")
	return nil
}
