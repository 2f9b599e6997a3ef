package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand represents a request to apply one recognized flow
// action to an order. Issued by the workflow-facing internal endpoint and by
// workflow activities.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	key    kernel.OrderKey
	action order.Action
	actor  order.Actor

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance an order.
// The action must be a recognized flow action; the actor is optional.
func NewAdvanceOrderCommand(key kernel.OrderKey, action order.Action, actor order.Actor) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		key.Validate(),
		action.Validate(),
	); err != nil {
		return AdvanceOrderCommand{}, err
	}

	cmd.key = key
	cmd.action = action
	cmd.actor = actor
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (c AdvanceOrderCommand) Key() kernel.OrderKey {
	return c.key
}

// Action returns the flow action to apply.
func (c AdvanceOrderCommand) Action() order.Action {
	return c.action
}

// Actor returns who performs the step.
func (c AdvanceOrderCommand) Actor() order.Actor {
	return c.actor
}
