package workflows

import (
	"context"
	"log/slog"

	"go.temporal.io/sdk/client"

	"fulfillment/internal/pkg/errs"
)

// Starter launches one fulfillment workflow per created order.
type Starter struct {
	client client.Client
	log    *slog.Logger
}

// NewStarter creates the workflow starter.
func NewStarter(temporalClient client.Client, log *slog.Logger) *Starter {
	return &Starter{
		client: temporalClient,
		log:    log.With("component", "workflow-starter"),
	}
}

// Start begins the fulfillment run for an order. The workflow id embeds the
// order key, so a duplicate start for the same order is rejected by Temporal
// rather than producing a second run.
func (s *Starter) Start(ctx context.Context, tenantID, orderID string) error {
	options := client.StartWorkflowOptions{
		ID:        "order-fulfillment/" + tenantID + "/" + orderID,
		TaskQueue: TaskQueue,
	}
	input := OrderWorkflowInput{TenantID: tenantID, OrderID: orderID}

	if _, err := s.client.ExecuteWorkflow(ctx, options, OrderFulfillmentWorkflow, input); err != nil {
		return errs.NewDependencyError("temporal", err)
	}

	s.log.InfoContext(ctx, "fulfillment workflow started",
		"tenant_id", tenantID,
		"order_id", orderID)
	return nil
}
