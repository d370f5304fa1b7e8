// Package state persists the guardrail auditor's validation state. Two
// implementations are provided: a JSON file replaced atomically on every
// write, and a Redis key for deployments that already run Redis.
package state

import "github.com/slazien/trackguard/internal/models"

type Store interface {
	// Load returns the persisted state, or the documented defaults when
	// nothing has been persisted yet. An error means the stored state
	// exists but could not be read; callers reset to defaults rather
	// than failing startup.
	Load() (models.ValidationState, error)
	Save(models.ValidationState) error
}
