package setup

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/slazien/trackguard/internal/auditor"
	"github.com/slazien/trackguard/internal/classifier"
	"github.com/slazien/trackguard/internal/gate"
	"github.com/slazien/trackguard/internal/llm"
	"github.com/slazien/trackguard/internal/llm/bedrock"
	"github.com/slazien/trackguard/internal/llm/gpt"
	"github.com/slazien/trackguard/internal/rules"
	"github.com/slazien/trackguard/internal/state"
)

// Dependencies is what the surrounding request-handling code consumes: the
// input gate for chat turns and the auditor for generated reports.
type Dependencies struct {
	Gate    *gate.Gate
	Auditor *auditor.Auditor
	Logger  *zerolog.Logger
}

// Wire builds the trust layer. A missing or unreachable generation service
// is not an error: the gate and auditor are wired without a client and
// resolve every decision fail-open, per policy.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	client := createLLMClient(ctx, cfg, logger)

	var c *classifier.Classifier
	if client != nil {
		c = classifier.New(client, logger)
	}

	doc := rules.Default()
	if cfg.RulesPath != "" {
		loaded, err := rules.Load(cfg.RulesPath)
		if err != nil {
			logger.Warn().Err(err).Str("path", cfg.RulesPath).Msg("rules override unreadable, using embedded defaults")
		} else {
			doc = loaded
		}
	}

	store, err := createStateStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create state store: %w", err)
	}

	return &Dependencies{
		Gate:    gate.New(c, logger),
		Auditor: auditor.New(store, client, doc, logger),
		Logger:  logger,
	}, nil
}

// createLLMClient returns nil when no guard model is configured; callers
// treat that as the fail-open no-service mode rather than an error.
func createLLMClient(ctx context.Context, cfg *Config, logger *zerolog.Logger) llm.Client {
	if cfg.GuardModelID == "" {
		logger.Warn().Msg("no guard model configured, gate and auditor run fail-open")
		return nil
	}

	switch cfg.Provider {
	case "openai":
		client, err := gpt.NewClient(cfg.OpenAIKey, cfg.GuardModelID)
		if err != nil {
			logger.Warn().Err(err).Msg("openai client unavailable, running fail-open")
			return nil
		}
		return client
	default:
		client, err := bedrock.NewClient(ctx, cfg.AWSRegion, cfg.GuardModelID)
		if err != nil {
			logger.Warn().Err(err).Msg("bedrock client unavailable, running fail-open")
			return nil
		}
		return client
	}
}

func createStateStore(ctx context.Context, cfg *Config) (state.Store, error) {
	switch cfg.StateBackend {
	case "redis":
		client, err := state.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, getEnvInt("REDIS_MAX_RETRIES", 3))
		if err != nil {
			return nil, err
		}
		return state.NewRedisStore(client, cfg.RedisStateKey), nil
	default:
		return state.NewFileStore(cfg.StatePath), nil
	}
}
