// Package probe provides deterministic failure fixtures for exercising an
// external test-metrics pipeline. A probe body is expected to panic; the
// captured panic is the signal the pipeline consumes, not a defect.
package probe

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Probe is a deterministic failure fixture tied to a metrics category.
type Probe struct {
	// Category names the failure pattern the metrics pipeline tracks,
	// e.g. "bounds_checking".
	Category string
	// Description is the human-readable justification for the probe.
	Description string
	// Body performs the failing operation. It must panic when behaving
	// as intended.
	Body func()
}

// FailureEvent is the raw failure signal emitted for the external metrics
// collector. The collector and its categorization logic are out of scope;
// this package only produces the event.
type FailureEvent struct {
	ID         uuid.UUID `json:"id"`
	Category   string    `json:"category"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Run executes the probe body and captures its panic as a FailureEvent,
// emitting it as a structured log record. It returns nil if the body
// returns without panicking.
func Run(p Probe) (event *FailureEvent) {
	defer func() {
		if r := recover(); r != nil {
			event = &FailureEvent{
				ID:         uuid.New(),
				Category:   p.Category,
				Message:    fmt.Sprint(r),
				OccurredAt: time.Now().UTC(),
			}
			emit(event)
		}
	}()

	p.Body()
	return nil
}

// emit logs the failure event for the external collector to pick up.
func emit(e *FailureEvent) {
	slog.Info("probe failure captured",
		"probe_id", e.ID.String(),
		"category", e.Category,
		"message", e.Message,
		"occurred_at", e.OccurredAt.Format(time.RFC3339),
	)
}

// TB is the subset of testing.TB needed by ExpectFailure.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

// ExpectFailure runs p under a strict expected-failure contract: the test
// passes only if the probe body panics, and the captured event is returned.
// A body that returns normally is an unexpected pass and fails the test.
func ExpectFailure(t TB, p Probe) *FailureEvent {
	t.Helper()

	event := Run(p)
	if event == nil {
		t.Fatalf("probe %q unexpectedly passed: %s did not raise", p.Category, p.Description)
	}
	return event
}
