package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// Mutating methods operate at field level rather than re-writing whole
// aggregates: each call issues one atomic update that appends to the
// relevant log and adjusts the affected columns together, so concurrent
// writers never clobber each other's history entries.
type OrderRepository interface {
	// Add persists a new order aggregate. Fails when the tenant/order key
	// already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its composite key.
	Get(ctx context.Context, key kernel.OrderKey) (*order.Order, error)

	// ApplyTransition moves the order from one status to the target of the
	// given entry and appends the entry to the workflow history, atomically.
	// The update is guarded by the expected current status: when the stored
	// status differs the call fails with a state conflict and the aggregate
	// is left untouched.
	ApplyTransition(ctx context.Context, key kernel.OrderKey, from order.Status, entry order.HistoryEntry) error

	// SetSuspension records the suspension marker on the order.
	SetSuspension(ctx context.Context, key kernel.OrderKey, suspension order.Suspension) error

	// ClearSuspension removes the suspension marker, stamping updatedAt.
	ClearSuspension(ctx context.Context, key kernel.OrderKey, at time.Time) error

	// AppendEvent appends one ingested event to the independent event log
	// and stamps the last-event-update column. Duplicates append again.
	AppendEvent(ctx context.Context, key kernel.OrderKey, entry order.EventEntry) error

	// FindByTenant retrieves all orders of the tenant, most recent first.
	FindByTenant(ctx context.Context, tenantID string) ([]*order.Order, error)

	// FindByStatus retrieves the tenant's orders in the given status,
	// most recent first.
	FindByStatus(ctx context.Context, tenantID string, status order.Status) ([]*order.Order, error)

	// FindByCustomer retrieves the tenant's orders placed by the customer,
	// most recent first.
	FindByCustomer(ctx context.Context, tenantID string, customerID string) ([]*order.Order, error)

	// FindStaleSuspensions retrieves orders across all tenants whose
	// suspension marker is older than the cutoff.
	FindStaleSuspensions(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
