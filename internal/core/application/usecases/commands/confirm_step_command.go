package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConfirmStepCommandIsNotConstructed = errors.New(
	"ConfirmStepCommand must be created via NewConfirmStepCommand constructor",
)

// ConfirmStepCommand represents a staff confirmation of the step an order is
// suspended at.
type ConfirmStepCommand struct { //nolint:recvcheck //using for validation
	key   kernel.OrderKey
	step  string
	staff order.Actor

	guard guard.ConstructorGuard
}

// NewConfirmStepCommand creates a confirmation command. The staff identity is
// required: confirmations are always attributable.
func NewConfirmStepCommand(key kernel.OrderKey, step string, staff order.Actor) (ConfirmStepCommand, error) {
	cmd := ConfirmStepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := key.Validate(); err != nil {
		return ConfirmStepCommand{}, err
	}
	if step == "" {
		return ConfirmStepCommand{}, errs.NewValueIsRequiredError("step")
	}
	if staff.StaffID == "" {
		return ConfirmStepCommand{}, errs.NewValueIsRequiredError("staffID")
	}

	cmd.key = key
	cmd.step = step
	cmd.staff = staff
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmStepCommand) Validate() error {
	return c.guard.Validate(ErrConfirmStepCommandIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (c ConfirmStepCommand) Key() kernel.OrderKey {
	return c.key
}

// Step returns the step being confirmed.
func (c ConfirmStepCommand) Step() string {
	return c.step
}

// Staff returns the confirming staff identity.
func (c ConfirmStepCommand) Staff() order.Actor {
	return c.staff
}
