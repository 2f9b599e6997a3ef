package workflows

import (
	"context"
	"encoding/base64"
	"log/slog"

	"go.temporal.io/sdk/activity"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// StepConfirmation is what the confirm command hands back to the waiting
// packing gate when it completes the activity.
type StepConfirmation struct {
	Step        string `json:"step"`
	StaffID     string `json:"staff_id"`
	StaffName   string `json:"staff_name,omitempty"`
	ConfirmedAt string `json:"confirmed_at"`
}

// PackedInput carries the confirming staff into the packing transition.
type PackedInput struct {
	Order OrderWorkflowInput
	Staff StepConfirmation
}

// Activities are the workflow's side effects. Transitions run through the
// same command handlers as the HTTP surface, so the status guard and event
// publication behave identically regardless of who drives the order.
type Activities struct {
	advance commands.AdvanceOrderCommandHandler
	suspend commands.SuspendOrderCommandHandler
	log     *slog.Logger
}

// NewActivities creates the activity set.
func NewActivities(
	advance commands.AdvanceOrderCommandHandler,
	suspend commands.SuspendOrderCommandHandler,
	log *slog.Logger,
) *Activities {
	return &Activities{
		advance: advance,
		suspend: suspend,
		log:     log.With("component", "workflow-activities"),
	}
}

// StartCooking moves the order to COOKING.
func (a *Activities) StartCooking(ctx context.Context, input OrderWorkflowInput) error {
	return a.applyAction(ctx, input, order.ActionCooking, order.Actor{})
}

// AwaitPackConfirmation parks the order at the packing gate. It stores its
// own task token through the suspend command and reports the result as
// pending; the confirm command later completes it with a StepConfirmation.
func (a *Activities) AwaitPackConfirmation(ctx context.Context, input OrderWorkflowInput) (StepConfirmation, error) {
	key, err := kernel.NewOrderKey(input.TenantID, input.OrderID)
	if err != nil {
		return StepConfirmation{}, err
	}

	token := base64.StdEncoding.EncodeToString(activity.GetInfo(ctx).TaskToken)
	cmd, err := commands.NewSuspendOrderCommand(key, PackStep, token)
	if err != nil {
		return StepConfirmation{}, err
	}
	if err := a.suspend.Handle(ctx, cmd); err != nil {
		return StepConfirmation{}, err
	}

	a.log.InfoContext(ctx, "waiting for packing confirmation",
		"order", key.String())
	return StepConfirmation{}, activity.ErrResultPending
}

// StartPacking moves the order to PACKING, attributed to the confirming
// staff member.
func (a *Activities) StartPacking(ctx context.Context, input PackedInput) error {
	actor := order.Actor{StaffID: input.Staff.StaffID, StaffName: input.Staff.StaffName}
	return a.applyAction(ctx, input.Order, order.ActionPacking, actor)
}

// StartDelivery moves the order to ON_DELIVERY.
func (a *Activities) StartDelivery(ctx context.Context, input OrderWorkflowInput) error {
	return a.applyAction(ctx, input, order.ActionOnDelivery, order.Actor{})
}

// CompleteDelivery moves the order to DELIVERED.
func (a *Activities) CompleteDelivery(ctx context.Context, input OrderWorkflowInput) error {
	return a.applyAction(ctx, input, order.ActionDelivered, order.Actor{})
}

func (a *Activities) applyAction(ctx context.Context, input OrderWorkflowInput, action order.Action, actor order.Actor) error {
	key, err := kernel.NewOrderKey(input.TenantID, input.OrderID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(key, action, actor)
	if err != nil {
		return err
	}

	_, err = a.advance.Handle(ctx, cmd)
	return err
}
