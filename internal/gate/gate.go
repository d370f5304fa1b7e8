// Package gate screens user chat messages before they reach the report
// generator. Checks run cheapest-first and short-circuit: empty, length,
// Unicode normalization, jailbreak patterns, then an LLM topic classifier.
// Every external failure past the deterministic checks resolves to allow;
// the generator's own system prompt carries a redundant topic restriction
// as defense in depth.
package gate

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/slazien/trackguard/internal/classifier"
	"github.com/slazien/trackguard/internal/models"
	"github.com/slazien/trackguard/internal/normalize"
)

type Gate struct {
	classifier *classifier.Classifier
	logger     *zerolog.Logger
}

// New builds a gate. classifier may be nil when no generation service is
// configured; the gate then allows inconclusive messages with reason
// no_service.
func New(c *classifier.Classifier, logger *zerolog.Logger) *Gate {
	return &Gate{
		classifier: c,
		logger:     logger,
	}
}

// Evaluate decides whether message may be forwarded to the generator.
func (g *Gate) Evaluate(ctx context.Context, message string) models.Decision {
	if strings.TrimSpace(message) == "" {
		return deny(models.ReasonEmpty, models.OffTopicRedirect)
	}

	// Length is checked on the raw message so normalization expansion
	// cannot be used to sneak past the bound.
	if utf8.RuneCountInString(message) > models.MaxMessageRunes {
		return deny(models.ReasonTooLong, models.MessageTooLong)
	}

	normalized := normalize.Normalize(message)

	if matched, exempt := matchJailbreak(normalized); matched && !exempt {
		g.logger.Warn().
			Int("message_runes", utf8.RuneCountInString(message)).
			Msg("jailbreak pattern matched, message blocked")
		return deny(models.ReasonJailbreak, models.OffTopicRedirect)
	}

	if g.classifier == nil {
		return allow(models.ReasonNoService)
	}

	onTopic, err := g.classifier.Classify(ctx, normalized)
	if err != nil {
		// Fail open: one failed call is not retried, chat latency
		// stays bounded.
		g.logger.Warn().Err(err).Msg("topic classifier unavailable, allowing message")
		return allow(models.ReasonFallback)
	}

	if !onTopic {
		return deny(models.ReasonClassifier, models.OffTopicRedirect)
	}
	return allow(models.ReasonClassifier)
}

// matchJailbreak reports whether the normalized text matches any known
// jailbreak phrasing, and whether the match is exempt. Only role-hijack
// matches can be exempted, and only when the message also references the
// assistant's own coaching domain.
func matchJailbreak(text string) (matched, exempt bool) {
	for _, p := range overridePatterns {
		if p.MatchString(text) {
			return true, false
		}
	}
	for _, p := range personaPatterns {
		if p.MatchString(text) {
			return true, false
		}
	}
	for _, p := range extractionPatterns {
		if p.MatchString(text) {
			return true, false
		}
	}
	for _, p := range delimiterPatterns {
		if p.MatchString(text) {
			return true, false
		}
	}

	for _, p := range roleHijackPatterns {
		if p.MatchString(text) {
			return true, domainRolePattern.MatchString(text)
		}
	}

	return false, false
}

func allow(reason models.ReasonCode) models.Decision {
	return models.Decision{Allowed: true, Reason: reason}
}

func deny(reason models.ReasonCode, message string) models.Decision {
	return models.Decision{Allowed: false, Reason: reason, Message: message}
}
