package ports

import "context"

// WorkflowOrchestrator resumes a fulfillment workflow that suspended itself
// waiting for an external confirmation.
type WorkflowOrchestrator interface {
	// Resume completes the suspended step identified by the opaque task
	// token. The result payload is handed back to the waiting workflow.
	Resume(ctx context.Context, taskToken string, result any) error
}
