package order

import (
	"time"

	"fulfillment/internal/pkg/errs"
)

// Suspension marks an order as waiting for one specific external
// confirmation. It carries the step name that will clear it and the opaque
// continuation token handed out by the workflow orchestrator.
//
// Suspension is a single optional value on the order: it is either fully
// present or absent, never partially populated. This replaces the
// three-independently-nullable-fields shape and eliminates the partial
// presence invariant violation by construction.
type Suspension struct {
	step      string
	taskToken string
	since     time.Time
}

// NewSuspension creates a suspension marker. Step and token are required;
// since records when the order started waiting.
func NewSuspension(step, taskToken string, since time.Time) (Suspension, error) {
	if step == "" {
		return Suspension{}, errs.NewValueIsRequiredError("step")
	}
	if taskToken == "" {
		return Suspension{}, errs.NewValueIsRequiredError("taskToken")
	}
	if since.IsZero() {
		return Suspension{}, errs.NewValueIsRequiredError("since")
	}

	return Suspension{step: step, taskToken: taskToken, since: since}, nil
}

// RestoreSuspension rebuilds a suspension from persistence without
// validation. Stored markers may be degenerate (a step without a token) when
// a partial write occurred before the single-value representation; the
// confirm path treats a missing token as a state conflict instead of
// rejecting the record at load time.
func RestoreSuspension(step, taskToken string, since time.Time) Suspension {
	return Suspension{step: step, taskToken: taskToken, since: since}
}

// Step returns the confirmation step the order is waiting on.
func (s Suspension) Step() string {
	return s.step
}

// TaskToken returns the orchestrator continuation token.
func (s Suspension) TaskToken() string {
	return s.taskToken
}

// Since returns when the suspension was recorded.
func (s Suspension) Since() time.Time {
	return s.since
}
