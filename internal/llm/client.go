package llm

import (
	"context"
)

//go:generate mockgen -destination=mocks/client_mock.go -package=mocks github.com/slazien/trackguard/internal/llm Client

// Client is the single capability through which trackguard reaches the
// generation service. Both the topic classifier and the guardrail validator
// go through it, which keeps them mockable in tests.
type Client interface {
	Complete(ctx context.Context, request Request) (*Response, error)
	CompleteWithRetry(ctx context.Context, request Request) (*Response, error)
}
