// Command attune is the interactive frontend for the attune resolution
// loop: a chat REPL with feedback capture, plus one-shot ask, teach and
// train subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hupe1980/attune"
	"github.com/hupe1980/attune/config"
	"github.com/hupe1980/attune/core"
	"github.com/hupe1980/attune/embedding"
	"github.com/hupe1980/attune/logging"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "attune",
	Short: "An assistant that learns from every conversation",
	Long: `attune answers questions through an escalating chain: taught memory,
system commands, web search, and a learned policy. Whatever it cannot
answer, you teach it; whatever you rate, it trains on.

Core Commands:
  chat    Interactive session with feedback capture
  ask     Resolve a single question and exit
  teach   Store an answer directly
  train   Retrain the policy from the interaction log`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default attune.yaml in . or $HOME/.attune)")
}

// setup loads configuration and assembles a ready Attune instance. The
// caller owns the instance and must Close it.
func setup(mutators ...func(o *attune.Options)) (*attune.Attune, *config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	logger := buildLogger(cfg.Log)

	embedder, err := buildEmbedder(cfg.Embedder)
	if err != nil {
		return nil, nil, err
	}

	app := attune.New(func(o *attune.Options) {
		o.DataDir = cfg.DataDir
		o.RecallThreshold = cfg.RecallThreshold
		o.BatchSize = cfg.BatchSize
		o.FeedbackWindow = cfg.FeedbackWindow
		o.SearchTimeout = cfg.SearchTimeout
		o.Embedder = embedder
		o.Logger = logger

		if cfg.SearchDisabled {
			o.Searcher = nil
		}

		for _, fn := range mutators {
			fn(o)
		}
	})

	return app, cfg, nil
}

func buildLogger(cfg config.LogConfig) logging.Logger {
	level := logging.LogLevelInfo
	switch cfg.Level {
	case "debug":
		level = logging.LogLevelDebug
	case "warn":
		level = logging.LogLevelWarn
	case "error":
		level = logging.LogLevelError
	}
	return logging.NewSlogLogger(level, cfg.Format, false)
}

func buildEmbedder(cfg config.EmbedderConfig) (core.Embedder, error) {
	switch cfg.Provider {
	case config.ProviderOllama:
		return embedding.NewOllamaEmbedder(func(o *embedding.OllamaOptions) {
			if cfg.OllamaHost != "" {
				o.Host = cfg.OllamaHost
			}
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			if cfg.Dim > 0 {
				o.Dim = cfg.Dim
			}
		})
	case config.ProviderOpenAI:
		return embedding.NewOpenAIEmbedder(func(o *embedding.OpenAIOptions) {
			if cfg.Model != "" {
				o.Model = cfg.Model
			}
			if cfg.Dim > 0 {
				o.Dim = cfg.Dim
			}
		}), nil
	default:
		return embedding.NewHashingEmbedder(func(o *embedding.HashingOptions) {
			if cfg.Dim > 0 {
				o.Dim = cfg.Dim
			}
		}), nil
	}
}
