// Package temporalorch resumes suspended fulfillment workflows through the
// Temporal client. It is the only place the core's opaque task token meets
// the workflow engine.
package temporalorch

import (
	"context"
	"encoding/base64"
	"log/slog"

	"go.temporal.io/sdk/client"

	"fulfillment/internal/pkg/errs"
)

// Orchestrator implements ports.WorkflowOrchestrator on a Temporal client.
type Orchestrator struct {
	client client.Client
	log    *slog.Logger
}

// NewOrchestrator creates the orchestrator adapter.
func NewOrchestrator(temporalClient client.Client, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		client: temporalClient,
		log:    log.With("component", "workflow-orchestrator"),
	}
}

// Resume completes the async activity identified by the task token, handing
// the result payload to the waiting workflow. The token travels base64
// encoded because it is raw bytes on the Temporal side and the suspension
// marker stores text.
func (o *Orchestrator) Resume(ctx context.Context, taskToken string, result any) error {
	raw, err := base64.StdEncoding.DecodeString(taskToken)
	if err != nil {
		return errs.NewStateConflictErrorWithCause("task token is not decodable", err)
	}

	if err := o.client.CompleteActivity(ctx, raw, result, nil); err != nil {
		return errs.NewDependencyError("temporal", err)
	}

	o.log.InfoContext(ctx, "workflow resumed")
	return nil
}
