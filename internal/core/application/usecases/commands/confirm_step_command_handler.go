package commands

import (
	"context"
	"log/slog"
	"time"

	"fulfillment/internal/core/ports"
)

// ConfirmStepCommandHandler validates a staff confirmation against the
// stored suspension, resumes the orchestrator with the stored token, and
// clears the marker.
//
// Resume and clear are two separate writes on purpose: if the process dies
// between them the order keeps its marker and a repeat confirm surfaces a
// conflict instead of silently double-resuming a consumed token. The
// reconciliation job makes leftover markers visible.
type ConfirmStepCommandHandler struct {
	orders       ports.OrderRepository
	orchestrator ports.WorkflowOrchestrator
	log          *slog.Logger
}

// NewConfirmStepCommandHandler creates a handler for step confirmation.
func NewConfirmStepCommandHandler(
	orders ports.OrderRepository,
	orchestrator ports.WorkflowOrchestrator,
	log *slog.Logger,
) ConfirmStepCommandHandler {
	return ConfirmStepCommandHandler{
		orders:       orders,
		orchestrator: orchestrator,
		log:          log.With("component", "confirm-step"),
	}
}

// ConfirmResult is handed to the resumed workflow step.
type ConfirmResult struct {
	Step        string `json:"step"`
	StaffID     string `json:"staff_id"`
	StaffName   string `json:"staff_name,omitempty"`
	ConfirmedAt string `json:"confirmed_at"`
}

// Handle processes the confirmation. Fails with ObjectNotFound for an absent
// order, StateConflict for a step mismatch or missing token, and a
// dependency error when the orchestrator rejects the resume (the marker is
// then left in place for retry).
func (h *ConfirmStepCommandHandler) Handle(ctx context.Context, cmd ConfirmStepCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orders.Get(ctx, cmd.Key())
	if err != nil {
		return err
	}

	suspension, err := aggregate.ConfirmStep(cmd.Step())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result := ConfirmResult{
		Step:        suspension.Step(),
		StaffID:     cmd.Staff().StaffID,
		StaffName:   cmd.Staff().StaffName,
		ConfirmedAt: now.Format(time.RFC3339),
	}
	if err := h.orchestrator.Resume(ctx, suspension.TaskToken(), result); err != nil {
		return err
	}

	if err := h.orders.ClearSuspension(ctx, cmd.Key(), now); err != nil {
		// The workflow already resumed; the stale marker is reconciled later.
		h.log.WarnContext(ctx, "suspension clear failed after resume",
			"order", cmd.Key().String(),
			"step", cmd.Step(),
			"error", err)
		return err
	}

	h.log.InfoContext(ctx, "step confirmed",
		"order", cmd.Key().String(),
		"step", cmd.Step(),
		"staff_id", cmd.Staff().StaffID)
	return nil
}
