package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	TranscriptRequests atomic.Int64
	PlayerFallbacks    atomic.Int64
	SecondaryFallbacks atomic.Int64
	TranslateCalls     atomic.Int64
	TranslateErrors    atomic.Int64
	OutcomePrimary     atomic.Int64
	OutcomeTranslated  atomic.Int64
	OutcomeNotFound    atomic.Int64
	OutcomeDisabled    atomic.Int64
	OutcomeFailed      atomic.Int64
	FormSubmissions    atomic.Int64
	FormRejected       atomic.Int64
	TranscriptsSaved   atomic.Int64
}

var metricKeys = []string{
	"transcript_requests", "player_fallbacks", "secondary_fallbacks",
	"translate_calls", "translate_errors",
	"outcome_primary", "outcome_translated", "outcome_not_found",
	"outcome_disabled", "outcome_failed",
	"form_submissions", "form_rejected", "transcripts_saved",
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"transcript_requests": metrics.TranscriptRequests.Load(),
		"player_fallbacks":    metrics.PlayerFallbacks.Load(),
		"secondary_fallbacks": metrics.SecondaryFallbacks.Load(),
		"translate_calls":     metrics.TranslateCalls.Load(),
		"translate_errors":    metrics.TranslateErrors.Load(),
		"outcome_primary":     metrics.OutcomePrimary.Load(),
		"outcome_translated":  metrics.OutcomeTranslated.Load(),
		"outcome_not_found":   metrics.OutcomeNotFound.Load(),
		"outcome_disabled":    metrics.OutcomeDisabled.Load(),
		"outcome_failed":      metrics.OutcomeFailed.Load(),
		"form_submissions":    metrics.FormSubmissions.Load(),
		"form_rejected":       metrics.FormRejected.Load(),
		"transcripts_saved":   metrics.TranscriptsSaved.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	for _, k := range metricKeys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for sources/ sub-package.
func IncrTranscriptRequests() { metrics.TranscriptRequests.Add(1) }
func IncrPlayerFallbacks()    { metrics.PlayerFallbacks.Add(1) }

// Incrementors for translate/ sub-package.
func IncrTranslateCalls()  { metrics.TranslateCalls.Add(1) }
func IncrTranslateErrors() { metrics.TranslateErrors.Add(1) }

// Incrementors for resolver/ and form/.
func IncrSecondaryFallbacks() { metrics.SecondaryFallbacks.Add(1) }
func IncrFormSubmissions()    { metrics.FormSubmissions.Add(1) }
func IncrFormRejected()       { metrics.FormRejected.Add(1) }
func IncrTranscriptsSaved()   { metrics.TranscriptsSaved.Add(1) }

// IncrOutcome counts a resolver outcome by its metric name
// (primary, translated, not_found, disabled, failed).
func IncrOutcome(kind string) {
	switch kind {
	case "primary":
		metrics.OutcomePrimary.Add(1)
	case "translated":
		metrics.OutcomeTranslated.Add(1)
	case "not_found":
		metrics.OutcomeNotFound.Add(1)
	case "disabled":
		metrics.OutcomeDisabled.Add(1)
	default:
		metrics.OutcomeFailed.Add(1)
	}
}

// TrackOperation logs a warning if an operation takes longer than threshold.
func TrackOperation(ctx context.Context, name string, fn func(context.Context) error) error {
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)
	if elapsed > 5*time.Second {
		slog.Warn("slow operation", slog.String("op", name), slog.Duration("elapsed", elapsed))
	}
	return err
}
