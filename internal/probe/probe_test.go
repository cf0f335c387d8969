package probe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// TestBoundsCheckingFailsAsExpected is the bounds_checking fixture itself:
// the out-of-bounds access must raise, and under the strict expected-failure
// contract that is the passing outcome.
func TestBoundsCheckingFailsAsExpected(t *testing.T) {
	event := ExpectFailure(t, BoundsChecking)

	if event.Category != "bounds_checking" {
		t.Errorf("event category = %q, want %q", event.Category, "bounds_checking")
	}
	if !strings.Contains(event.Message, "index out of range") {
		t.Errorf("event message = %q, want an index out of range error", event.Message)
	}
	if event.ID == uuid.Nil {
		t.Error("event ID is the nil UUID")
	}
	if event.OccurredAt.IsZero() {
		t.Error("event OccurredAt is the zero time")
	}
}

func TestRunCapturesArbitraryPanicValues(t *testing.T) {
	p := Probe{
		Category:    "custom",
		Description: "panics with a plain string",
		Body:        func() { panic("boom") },
	}

	event := Run(p)
	if event == nil {
		t.Fatal("Run() = nil, want a failure event")
	}
	if event.Message != "boom" {
		t.Errorf("event message = %q, want %q", event.Message, "boom")
	}
}

func TestRunReturnsNilWhenBodyCompletes(t *testing.T) {
	p := Probe{
		Category:    "noop",
		Description: "returns without panicking",
		Body:        func() {},
	}

	if event := Run(p); event != nil {
		t.Errorf("Run() = %+v, want nil for a body that completes", event)
	}
}

// recordingTB captures Fatalf calls so the strict contract can be asserted
// without failing the enclosing test.
type recordingTB struct {
	fatal   bool
	message string
}

func (r *recordingTB) Helper() {}

func (r *recordingTB) Fatalf(format string, args ...any) {
	r.fatal = true
	r.message = fmt.Sprintf(format, args...)
}

func TestExpectFailureFlagsUnexpectedPass(t *testing.T) {
	rec := &recordingTB{}
	p := Probe{
		Category:    "bounds_checking",
		Description: "a body that no longer raises",
		Body:        func() {},
	}

	ExpectFailure(rec, p)

	if !rec.fatal {
		t.Fatal("expected the strict contract to report a failure for an unexpected pass")
	}
	if !strings.Contains(rec.message, "unexpectedly passed") {
		t.Errorf("failure message = %q, want it to mention the unexpected pass", rec.message)
	}
}

func TestExpectFailureReturnsEventOnExpectedFailure(t *testing.T) {
	rec := &recordingTB{}

	event := ExpectFailure(rec, BoundsChecking)

	if rec.fatal {
		t.Fatalf("strict contract reported a failure for an expected one: %s", rec.message)
	}
	if event == nil {
		t.Fatal("ExpectFailure() = nil, want the captured event")
	}
}
