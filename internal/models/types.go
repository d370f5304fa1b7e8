package models

import (
	"fmt"
	"time"
)

// ReasonCode identifies which stage of the input gate produced a decision.
type ReasonCode string

const (
	ReasonClassifier ReasonCode = "classifier"
	ReasonFallback   ReasonCode = "fallback"
	ReasonNoService  ReasonCode = "no_service"
	ReasonEmpty      ReasonCode = "empty"
	ReasonTooLong    ReasonCode = "too_long"
	ReasonJailbreak  ReasonCode = "jailbreak"
)

// MaxMessageRunes is the hard limit on inbound chat messages, measured in
// code points before any normalization so expansion cannot bypass it.
const MaxMessageRunes = 2000

// Auditor tuning constants. The interval controller never moves the
// sampling interval outside [MinInterval, MaxInterval].
const (
	DefaultInterval      = 20
	MinInterval          = 5
	MaxInterval          = 200
	WindowSize           = 10
	MinChecksForSignal   = 3
	FailureRateThreshold = 0.20
)

// OffTopicRedirect is the canned reply for messages the gate refuses to
// forward. Part of the external contract; reproduce verbatim.
const OffTopicRedirect = "I'm here to help you improve your driving! Let's talk about your laps, braking points, racing lines, or anything else about your time on track."

// MessageTooLong states the numeric limit so users know what to trim.
var MessageTooLong = fmt.Sprintf("That message is a bit too long for me. Please keep it under %d characters so I can focus on your driving.", MaxMessageRunes)

// Decision is the per-message output of the input gate. It is never
// persisted. Message carries the canned user-facing reply and is set only
// when Allowed is false.
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  ReasonCode `json:"reason"`
	Message string     `json:"message,omitempty"`
}

// ValidationRecord is one compliance-check outcome. Immutable once created;
// Violations is empty iff Passed.
type ValidationRecord struct {
	Timestamp  time.Time `json:"timestamp"`
	Passed     bool      `json:"passed"`
	Violations []string  `json:"violations"`
}

// ValidationState is the durable state of the guardrail auditor.
type ValidationState struct {
	CurrentInterval   int                `json:"current_interval"`
	OutputsSinceCheck int                `json:"outputs_since_check"`
	TotalOutputs      int                `json:"total_outputs"`
	TotalChecks       int                `json:"total_checks"`
	TotalFailures     int                `json:"total_failures"`
	Checks            []ValidationRecord `json:"checks"`
}

// DefaultValidationState is the state used on first run and whenever the
// persisted state is missing or unreadable.
func DefaultValidationState() ValidationState {
	return ValidationState{CurrentInterval: DefaultInterval}
}

// Clone returns a deep copy so snapshots can leave the auditor's lock.
func (s ValidationState) Clone() ValidationState {
	out := s
	out.Checks = make([]ValidationRecord, len(s.Checks))
	copy(out.Checks, s.Checks)
	for i, c := range s.Checks {
		v := make([]string, len(c.Violations))
		copy(v, c.Violations)
		out.Checks[i].Violations = v
	}
	return out
}

// AuditSummary is the read-only operational view of the auditor.
type AuditSummary struct {
	TotalOutputs      int     `json:"total_outputs"`
	TotalChecks       int     `json:"total_checks"`
	TotalFailures     int     `json:"total_failures"`
	CurrentInterval   int     `json:"current_interval"`
	NextCheckIn       int     `json:"next_check_in"`
	RecentFailureRate float64 `json:"recent_failure_rate"`
}
