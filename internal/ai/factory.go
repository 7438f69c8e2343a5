package ai

import (
	"math/rand"
	"net/http"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/incidentdesk/backend/internal/config"
)

// IncidentsFromConfig picks the similarIncidents source: "hashed" is stable
// per ticket text; anything else draws randomly, seeded by SIMULATION_SEED
// when it is non-zero.
func IncidentsFromConfig(cfg config.Config) IncidentCounter {
	if cfg.SimulatedIncidents == "hashed" {
		return HashedIncidents()
	}
	if cfg.SimulationSeed != 0 {
		return RandomIncidents(rand.New(rand.NewSource(cfg.SimulationSeed)))
	}
	return RandomIncidents(nil)
}

// FromConfig builds the analyzer chain. The second result reports whether a
// remote analyzer is configured.
func FromConfig(cfg config.Config, logger zerolog.Logger) (Adapter, bool) {
	incidents := IncidentsFromConfig(cfg)
	local := HeuristicAdapter{Incidents: incidents}
	if !cfg.RemoteEnabled() {
		logger.Info().Msg("using heuristic ticket analyzer")
		return local, false
	}

	client := &http.Client{Timeout: cfg.AITimeout}
	var remote Adapter
	switch cfg.AIProvider {
	case config.ProviderOpenAI:
		baseURL := cfg.AIBaseURL
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		remote = &OpenAIAdapter{
			BaseURL:   baseURL,
			Model:     cfg.AIModel,
			APIKey:    cfg.AIAPIKey,
			MaxTokens: cfg.AIMaxTokens,
			Client:    client,
			CacheTTL:  cfg.AICacheTTL,
		}
	case config.ProviderAnthropic:
		remote = AnthropicAdapter{
			APIKey:    cfg.AIAPIKey,
			Model:     cfg.AIModel,
			BaseURL:   cfg.AIBaseURL,
			MaxTokens: int64(cfg.AIMaxTokens),
		}
	case config.ProviderHTTP:
		remote = HTTPAdapter{BaseURL: cfg.AIBaseURL, APIKey: cfg.AIAPIKey, Client: client}
	}

	var limiter *rate.Limiter
	if cfg.AIRate > 0 {
		burst := int(cfg.AIRate)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.AIRate), burst)
	}

	logger.Info().Str("provider", cfg.AIProvider).Str("model", cfg.AIModel).Msg("using remote ticket analyzer with heuristic fallback")
	return FallbackAdapter{
		Remote:    remote,
		Local:     local,
		Limiter:   limiter,
		Timeout:   cfg.AITimeout,
		Incidents: incidents,
		Logger:    logger,
	}, true
}
