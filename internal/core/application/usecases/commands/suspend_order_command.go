package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrSuspendOrderCommandIsNotConstructed = errors.New(
	"SuspendOrderCommand must be created via NewSuspendOrderCommand constructor",
)

// SuspendOrderCommand represents a request to park an order at a named step,
// holding the orchestrator's continuation token until staff confirm the step.
type SuspendOrderCommand struct { //nolint:recvcheck //using for validation
	key       kernel.OrderKey
	step      string
	taskToken string

	guard guard.ConstructorGuard
}

// NewSuspendOrderCommand creates a suspension command. Step and token are
// required together: a marker missing either is useless to the confirm path.
func NewSuspendOrderCommand(key kernel.OrderKey, step, taskToken string) (SuspendOrderCommand, error) {
	cmd := SuspendOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := key.Validate(); err != nil {
		return SuspendOrderCommand{}, err
	}
	if step == "" {
		return SuspendOrderCommand{}, errs.NewValueIsRequiredError("step")
	}
	if taskToken == "" {
		return SuspendOrderCommand{}, errs.NewValueIsRequiredError("taskToken")
	}

	cmd.key = key
	cmd.step = step
	cmd.taskToken = taskToken
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SuspendOrderCommand) Validate() error {
	return c.guard.Validate(ErrSuspendOrderCommandIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (c SuspendOrderCommand) Key() kernel.OrderKey {
	return c.key
}

// Step returns the step the order will wait at.
func (c SuspendOrderCommand) Step() string {
	return c.step
}

// TaskToken returns the orchestrator continuation token to store.
func (c SuspendOrderCommand) TaskToken() string {
	return c.taskToken
}
