package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Embedder providers selectable via configuration.
const (
	ProviderHashing = "hashing"
	ProviderOllama  = "ollama"
	ProviderOpenAI  = "openai"
)

// EmbedderConfig selects and parameterizes the embedding backend.
type EmbedderConfig struct {
	// Provider is one of "hashing", "ollama" or "openai".
	Provider string `mapstructure:"provider"`
	// Model names the embedding model for remote providers.
	Model string `mapstructure:"model"`
	// Dim overrides the embedding dimensionality where the provider
	// supports it; zero keeps the provider default.
	Dim int `mapstructure:"dim"`
	// OllamaHost is the Ollama server base URL.
	OllamaHost string `mapstructure:"ollama_host"`
}

// LogConfig controls the structured logger of the frontend.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

// Config is the full frontend configuration.
type Config struct {
	// DataDir holds the JSON store files.
	DataDir string `mapstructure:"data_dir"`

	// RecallThreshold is the minimum fuzzy score for a memory hit.
	RecallThreshold int `mapstructure:"recall_threshold"`
	// BatchSize is the interaction count between training triggers.
	BatchSize int `mapstructure:"batch_size"`
	// FeedbackWindow delays the implicit positive reward.
	FeedbackWindow time.Duration `mapstructure:"feedback_window"`
	// SearchTimeout bounds each web search call.
	SearchTimeout time.Duration `mapstructure:"search_timeout"`
	// SearchDisabled turns off the web search step for offline use.
	SearchDisabled bool `mapstructure:"search_disabled"`

	Embedder EmbedderConfig `mapstructure:"embedder"`
	Log      LogConfig      `mapstructure:"log"`
}

// Load reads configuration with the following precedence, lowest first:
// built-in defaults, the config file, environment variables. A .env file in
// the working directory is loaded into the environment first when present.
//
// With an empty path the file attune.yaml is searched in the working
// directory and in $HOME/.attune; a missing file is not an error. An
// explicit path that cannot be read is.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("data_dir", "data")
	v.SetDefault("recall_threshold", 85)
	v.SetDefault("batch_size", 20)
	v.SetDefault("feedback_window", "4s")
	v.SetDefault("search_timeout", "5s")
	v.SetDefault("search_disabled", false)
	v.SetDefault("embedder.provider", ProviderHashing)
	v.SetDefault("embedder.model", "")
	v.SetDefault("embedder.dim", 0)
	v.SetDefault("embedder.ollama_host", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("ATTUNE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("attune")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.attune")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the stores and the resolver cannot work with.
func (c *Config) Validate() error {
	if c.RecallThreshold < 0 || c.RecallThreshold > 100 {
		return fmt.Errorf("recall_threshold %d out of range [0,100]", c.RecallThreshold)
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch_size %d must be at least 1", c.BatchSize)
	}
	if c.SearchTimeout <= 0 {
		return fmt.Errorf("search_timeout %s must be positive", c.SearchTimeout)
	}
	switch c.Embedder.Provider {
	case ProviderHashing, ProviderOllama, ProviderOpenAI:
	default:
		return fmt.Errorf("unknown embedder provider %q", c.Embedder.Provider)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
