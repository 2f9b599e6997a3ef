package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// EventPublisher announces domain events on the event bus.
//
// Publication is best-effort: callers treat a returned error as a signal to
// log and count, never as a reason to fail the state change that produced
// the event. Delivery downstream is at-least-once.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
