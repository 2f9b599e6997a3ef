// Package workflows drives the fulfillment flow of one order through
// Temporal: kitchen start, a staff-confirmed packing gate, delivery and
// completion. The workflow never touches storage itself; every state change
// goes through the same commands the HTTP surface uses.
package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueue is the queue both the worker and workflow starters use.
const TaskQueue = "fulfillment-orders"

// PackStep is the confirmation gate name stored in the suspension marker.
const PackStep = "PACK"

// OrderWorkflowInput identifies the order a workflow run drives.
type OrderWorkflowInput struct {
	TenantID string
	OrderID  string
}

// OrderFulfillmentWorkflow walks one order along the happy path. The packing
// step parks the run on an async activity until staff confirm it; the
// confirmation arrives through the orchestrator port, not through Temporal
// signals, so the run observes it as the activity's completion.
func OrderFulfillmentWorkflow(ctx workflow.Context, input OrderWorkflowInput) error {
	logger := workflow.GetLogger(ctx)
	logger.Info("fulfillment started", "tenant_id", input.TenantID, "order_id", input.OrderID)

	stepCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 3},
	})

	var a *Activities
	if err := workflow.ExecuteActivity(stepCtx, a.StartCooking, input).Get(stepCtx, nil); err != nil {
		return err
	}

	// The packing gate stays open until staff confirm; the activity completes
	// asynchronously, so the timeout is the budget for the confirmation, not
	// for any computation.
	gateCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 24 * time.Hour,
		RetryPolicy:         &temporal.RetryPolicy{MaximumAttempts: 1},
	})
	var confirmation StepConfirmation
	if err := workflow.ExecuteActivity(gateCtx, a.AwaitPackConfirmation, input).Get(gateCtx, &confirmation); err != nil {
		return err
	}
	logger.Info("packing confirmed", "order_id", input.OrderID, "staff_id", confirmation.StaffID)

	packing := PackedInput{Order: input, Staff: confirmation}
	if err := workflow.ExecuteActivity(stepCtx, a.StartPacking, packing).Get(stepCtx, nil); err != nil {
		return err
	}

	if err := workflow.ExecuteActivity(stepCtx, a.StartDelivery, input).Get(stepCtx, nil); err != nil {
		return err
	}

	if err := workflow.ExecuteActivity(stepCtx, a.CompleteDelivery, input).Get(stepCtx, nil); err != nil {
		return err
	}

	logger.Info("fulfillment finished", "order_id", input.OrderID)
	return nil
}
