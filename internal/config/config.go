package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ProviderHeuristic = "heuristic"
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderHTTP      = "http"
)

type Config struct {
	Env            string        `mapstructure:"ENV"`
	Port           string        `mapstructure:"PORT"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	CORSAllowed    string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	AdminKey       string        `mapstructure:"ADMIN_KEY"`

	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	FixturesPath string `mapstructure:"FIXTURES_PATH"`

	AIProvider  string        `mapstructure:"AI_PROVIDER"`
	AIBaseURL   string        `mapstructure:"AI_BASE_URL"`
	AIModel     string        `mapstructure:"AI_MODEL"`
	AIAPIKey    string        `mapstructure:"AI_API_KEY"`
	AITimeout   time.Duration `mapstructure:"AI_TIMEOUT"`
	AIRate      float64       `mapstructure:"AI_RATE_PER_SEC"`
	AICacheTTL  time.Duration `mapstructure:"AI_CACHE_TTL"`
	AIMaxTokens int           `mapstructure:"AI_MAX_TOKENS"`

	// SimulationSeed seeds the simulated similarIncidents value. 0 seeds from the clock.
	SimulationSeed     int64  `mapstructure:"SIMULATION_SEED"`
	SimulatedIncidents string `mapstructure:"SIMULATED_INCIDENTS"`
}

func Load() (Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	_ = v.ReadInConfig()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.AIProvider = strings.ToLower(strings.TrimSpace(cfg.AIProvider))
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("ADMIN_KEY", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("FIXTURES_PATH", "")
	v.SetDefault("AI_PROVIDER", ProviderHeuristic)
	v.SetDefault("AI_BASE_URL", "")
	v.SetDefault("AI_MODEL", "")
	v.SetDefault("AI_API_KEY", "")
	v.SetDefault("AI_TIMEOUT", "15s")
	v.SetDefault("AI_RATE_PER_SEC", 2)
	v.SetDefault("AI_CACHE_TTL", "10m")
	v.SetDefault("AI_MAX_TOKENS", 500)
	v.SetDefault("SIMULATION_SEED", 0)
	v.SetDefault("SIMULATED_INCIDENTS", "random")
}

// RemoteEnabled reports whether a remote analyzer is configured with a credential.
func (c Config) RemoteEnabled() bool {
	switch c.AIProvider {
	case ProviderOpenAI, ProviderAnthropic:
		return c.AIAPIKey != ""
	case ProviderHTTP:
		return c.AIBaseURL != ""
	}
	return false
}
