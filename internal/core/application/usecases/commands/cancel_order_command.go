package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order, recording who
// cancelled it and why. Cancellation is a status, not a record removal.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	key         kernel.OrderKey
	reason      string
	cancelledBy string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a cancellation command. The reason and the
// cancelling actor are both required: every cancellation must be explainable
// from the history alone.
func NewCancelOrderCommand(key kernel.OrderKey, reason, cancelledBy string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := key.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if reason == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}
	if cancelledBy == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("cancelledBy")
	}

	cmd.key = key
	cmd.reason = reason
	cmd.cancelledBy = cancelledBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (c CancelOrderCommand) Key() kernel.OrderKey {
	return c.key
}

// Reason returns the stated cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}

// CancelledBy returns who requested the cancellation.
func (c CancelOrderCommand) CancelledBy() string {
	return c.cancelledBy
}
