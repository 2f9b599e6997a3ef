package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrIngestEventCommandIsNotConstructed = errors.New(
	"IngestEventCommand must be created via NewIngestEventCommand constructor",
)

// IngestEventCommand represents one domain event received from the bus,
// destined for the order's independent event log.
type IngestEventCommand struct { //nolint:recvcheck //using for validation
	event order.Event

	guard guard.ConstructorGuard
}

// NewIngestEventCommand creates an ingestion command. Event type, tenant and
// order id are the minimum a routable event must carry; anything less is
// malformed and the message is dropped by the consumer.
func NewIngestEventCommand(event order.Event) (IngestEventCommand, error) {
	cmd := IngestEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if event.EventType == "" {
		return IngestEventCommand{}, errs.NewValueIsRequiredError("eventType")
	}
	if event.TenantID == "" {
		return IngestEventCommand{}, errs.NewValueIsRequiredError("tenantID")
	}
	if event.OrderID == "" {
		return IngestEventCommand{}, errs.NewValueIsRequiredError("orderID")
	}

	cmd.event = event
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IngestEventCommand) Validate() error {
	return c.guard.Validate(ErrIngestEventCommandIsNotConstructed)
}

// Event returns the event to ingest.
func (c IngestEventCommand) Event() order.Event {
	return c.event
}
