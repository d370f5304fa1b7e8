package auditor

import "github.com/slazien/trackguard/internal/models"

// adjustIntervalLocked retunes the sampling interval from the rolling
// window after every check. Multiplicative both ways: a full clean window
// doubles the interval, a failure rate over the threshold halves it.
// Fewer than MinChecksForSignal records is too little signal to act on.
func (a *Auditor) adjustIntervalLocked() {
	window := recentWindow(a.st.Checks)
	if len(window) < models.MinChecksForSignal {
		return
	}

	// The rate is always over the full window size, so a partially filled
	// window cannot trip the threshold on a single failure.
	failureRate := float64(countFailures(window)) / float64(models.WindowSize)

	switch {
	case len(window) == models.WindowSize && failureRate == 0:
		next := a.st.CurrentInterval * 2
		if next > models.MaxInterval {
			next = models.MaxInterval
		}
		if next != a.st.CurrentInterval {
			a.logger.Info().
				Int("from", a.st.CurrentInterval).
				Int("to", next).
				Msg("clean window, relaxing audit interval")
			a.st.CurrentInterval = next
		}
	case failureRate > models.FailureRateThreshold:
		next := a.st.CurrentInterval / 2
		if next < models.MinInterval {
			next = models.MinInterval
		}
		if next != a.st.CurrentInterval {
			a.logger.Warn().
				Float64("failure_rate", failureRate).
				Int("from", a.st.CurrentInterval).
				Int("to", next).
				Msg("failure spike, tightening audit interval")
			a.st.CurrentInterval = next
		}
	}
}

func recentWindow(checks []models.ValidationRecord) []models.ValidationRecord {
	if len(checks) <= models.WindowSize {
		return checks
	}
	return checks[len(checks)-models.WindowSize:]
}

func countFailures(window []models.ValidationRecord) int {
	n := 0
	for _, c := range window {
		if !c.Passed {
			n++
		}
	}
	return n
}
