// Package auditor samples generated coaching reports and checks them
// against the driving ground-truth rules with a cheap model call. The
// sampling interval self-tunes: a clean rolling window doubles it, a
// failure spike halves it. The auditor is advisory; none of its own
// failures ever block report delivery.
package auditor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/slazien/trackguard/internal/llm"
	"github.com/slazien/trackguard/internal/modelout"
	"github.com/slazien/trackguard/internal/models"
	"github.com/slazien/trackguard/internal/rules"
	"github.com/slazien/trackguard/internal/state"
)

const validatePromptFmt = `You are a compliance checker for driving-coaching reports.
Below is a list of driving ground truths, followed by a generated report.
Decide whether the report contradicts any of the ground truths. Only flag
direct contradictions, not omissions or differences in emphasis.

Ground truths:
%s
Report:
%s

Respond ONLY in raw JSON with no markdown, no code blocks, no explanation:
{"passed": <bool>, "violations": ["<each contradicted rule, briefly>"]}`

type complianceVerdict struct {
	Passed     bool     `json:"passed"`
	Violations []string `json:"violations"`
}

// Auditor owns the validation state. All mutation happens under mu; the
// model call runs outside it so a slow check does not serialize callers.
type Auditor struct {
	mu     sync.Mutex
	st     models.ValidationState
	store  state.Store
	client llm.Client
	doc    rules.Document
	logger *zerolog.Logger
	now    func() time.Time
}

// New loads persisted state from store. Corrupt or unreadable state resets
// to the documented defaults; startup never fails on bad state.
func New(store state.Store, client llm.Client, doc rules.Document, logger *zerolog.Logger) *Auditor {
	st, err := store.Load()
	if err != nil {
		logger.Warn().Err(err).Msg("validation state unreadable, resetting to defaults")
		st = models.DefaultValidationState()
	}

	return &Auditor{
		st:     st,
		store:  store,
		client: client,
		doc:    doc,
		logger: logger,
		now:    time.Now,
	}
}

// RecordAndMaybeValidate counts one generated report and, every Nth call,
// checks it against the rules document. Returns nil when no check ran.
func (a *Auditor) RecordAndMaybeValidate(ctx context.Context, reportText string) *models.ValidationRecord {
	a.mu.Lock()
	a.st.TotalOutputs++
	a.st.OutputsSinceCheck++

	if a.st.OutputsSinceCheck < a.st.CurrentInterval {
		a.persistLocked()
		a.mu.Unlock()
		return nil
	}

	a.st.OutputsSinceCheck = 0
	a.mu.Unlock()

	record := a.validate(ctx, reportText)

	a.mu.Lock()
	a.recordCheckLocked(record)
	a.persistLocked()
	a.mu.Unlock()

	return &record
}

// ForceValidate checks a report unconditionally. It is used after a
// regeneration that followed a failed check, so it updates check history
// and the interval but leaves the sampling counters alone.
func (a *Auditor) ForceValidate(ctx context.Context, reportText string) models.ValidationRecord {
	record := a.validate(ctx, reportText)

	a.mu.Lock()
	a.recordCheckLocked(record)
	a.persistLocked()
	a.mu.Unlock()

	return record
}

// Summary returns the operational view of the auditor.
func (a *Auditor) Summary() models.AuditSummary {
	a.mu.Lock()
	defer a.mu.Unlock()

	window := recentWindow(a.st.Checks)
	var rate float64
	if len(window) > 0 {
		rate = float64(countFailures(window)) / float64(len(window))
	}

	return models.AuditSummary{
		TotalOutputs:      a.st.TotalOutputs,
		TotalChecks:       a.st.TotalChecks,
		TotalFailures:     a.st.TotalFailures,
		CurrentInterval:   a.st.CurrentInterval,
		NextCheckIn:       a.st.CurrentInterval - a.st.OutputsSinceCheck,
		RecentFailureRate: rate,
	}
}

// validate runs the compliance check. Every failure mode resolves to a
// pass: an unavailable or incoherent auditor must never surface as a
// user-facing error.
func (a *Auditor) validate(ctx context.Context, reportText string) models.ValidationRecord {
	record := models.ValidationRecord{
		Timestamp:  a.now(),
		Passed:     true,
		Violations: []string{},
	}

	if a.client == nil {
		return record
	}

	resp, err := a.client.CompleteWithRetry(ctx, llm.Request{
		Prompt:      fmt.Sprintf(validatePromptFmt, a.doc.Text(), reportText),
		MaxTokens:   512,
		Temperature: 0.0,
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("compliance check call failed, treating as pass")
		return record
	}

	var verdict complianceVerdict
	if err := modelout.Unmarshal(resp.Content, &verdict); err != nil {
		a.logger.Warn().
			Str("content", resp.Content).
			Msg("compliance verdict unparsable, treating as pass")
		return record
	}

	record.Passed = verdict.Passed
	if verdict.Passed {
		record.Violations = []string{}
	} else {
		record.Violations = verdict.Violations
		if len(record.Violations) == 0 {
			record.Violations = []string{"report contradicts the driving ground truths"}
		}
	}

	return record
}

func (a *Auditor) recordCheckLocked(record models.ValidationRecord) {
	a.st.Checks = append(a.st.Checks, record)
	a.st.TotalChecks++
	if !record.Passed {
		a.st.TotalFailures++
		a.logger.Warn().
			Strs("violations", record.Violations).
			Msg("generated report failed compliance check")
	}

	a.adjustIntervalLocked()

	// A halved interval can undercut the sampling counter; clamp so the
	// next output triggers a check instead of leaving the counter ahead
	// of the interval.
	if a.st.OutputsSinceCheck >= a.st.CurrentInterval {
		a.st.OutputsSinceCheck = a.st.CurrentInterval - 1
	}
}

func (a *Auditor) persistLocked() {
	if err := a.store.Save(a.st); err != nil {
		// In-memory state stays authoritative for the process lifetime.
		a.logger.Error().Err(err).Msg("failed to persist validation state")
	}
}
