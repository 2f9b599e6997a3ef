package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrItemsAreRequired is returned when an order is created without line items.
	ErrItemsAreRequired = errors.New("order must contain at least one item")
)

// Order represents a tenant-scoped order in the system. It is the aggregate
// root that manages the order lifecycle from placement through the fixed
// fulfillment stage sequence to a terminal status.
//
// Order follows these invariants:
//   - The composite tenant/order key is unique and never reassigned
//   - Status is always a member of the closed status set
//   - The workflow history is append-only; no entry is edited or removed
//   - The suspension marker is all-present or absent, never partial
//   - Once status is terminal, no status-changing operation is accepted
//
// The total is derived once at creation as the exact decimal sum of
// price times quantity across all items; it is never recomputed.
//
// The struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// key is the composite tenant/order identity
	key kernel.OrderKey

	// customerID identifies the ordering customer
	customerID string

	// items is the ordered sequence of lines priced at order time
	items []Item

	// total is the derived monetary total, fixed at creation
	total decimal.Decimal

	// status is the current lifecycle state
	status Status

	// createdAt is immutable; updatedAt moves on every transition
	createdAt time.Time
	updatedAt time.Time

	// history is the append-only workflow transition log
	history []HistoryEntry

	// eventHistory is the append-only ingested-event log, written only
	// by the ingestion consumer
	eventHistory []EventEntry

	// suspension is present iff the order awaits one external confirmation
	suspension *Suspension

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order at the start of its lifecycle: status PENDING,
// a single INIT history entry attributed to the customer, no suspension.
// The monetary total is computed here, exactly, and never again.
func NewOrder(key kernel.OrderKey, customerID string, items []Item, now time.Time) (*Order, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}
	if len(items) == 0 {
		return nil, ErrItemsAreRequired
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}

	initEntry := HistoryEntry{
		Action:    ActionInit,
		Status:    StatusPending,
		Timestamp: now,
		By:        customerID,
	}

	return &Order{
		key:           key,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		total:         total,
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
		history:       []HistoryEntry{initEntry},
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// trusted as-is; status membership is revalidated because the row may come
// from an older writer.
func RestoreOrder(
	key kernel.OrderKey,
	customerID string,
	items []Item,
	total decimal.Decimal,
	status Status,
	createdAt, updatedAt time.Time,
	history []HistoryEntry,
	eventHistory []EventEntry,
	suspension *Suspension,
) (*Order, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		key:           key,
		customerID:    customerID,
		items:         append([]Item(nil), items...),
		total:         total,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		history:       append([]HistoryEntry(nil), history...),
		eventHistory:  append([]EventEntry(nil), eventHistory...),
		suspension:    suspension,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// Key returns the composite tenant/order identity.
func (o *Order) Key() kernel.OrderKey {
	return o.key
}

// CustomerID returns the ordering customer's identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Total returns the monetary total fixed at creation.
func (o *Order) Total() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the placement timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the latest transition.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// History returns a copy of the append-only workflow log.
func (o *Order) History() []HistoryEntry {
	return append([]HistoryEntry(nil), o.history...)
}

// EventHistory returns a copy of the append-only ingested-event log.
func (o *Order) EventHistory() []EventEntry {
	return append([]EventEntry(nil), o.eventHistory...)
}

// Suspension returns the current suspension marker, or nil when the order
// is not waiting for a confirmation.
func (o *Order) Suspension() *Suspension {
	if o.suspension == nil {
		return nil
	}
	s := *o.suspension
	return &s
}

// Advance applies a recognized flow action: it computes the target status
// from the static action table, stamps updatedAt, and appends the matching
// history entry. The three mutations belong to one atomic store update; the
// aggregate mirrors them so callers see the post-transition state.
//
// Fails with a validation error for an unrecognized action and with a state
// conflict when the current status is terminal.
func (o *Order) Advance(action Action, actor Actor, now time.Time) (HistoryEntry, error) {
	if err := o.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if err := action.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if o.status.IsTerminal() {
		return HistoryEntry{}, errs.NewStateConflictErrorWithCause(
			"order accepts no further transitions",
			fmt.Errorf("status is %s", o.status),
		)
	}

	target, err := action.TargetStatus()
	if err != nil {
		return HistoryEntry{}, err
	}

	entry := HistoryEntry{
		Action:    action,
		Status:    target,
		Timestamp: now,
		By:        actor.By,
		StaffID:   actor.StaffID,
		StaffName: actor.StaffName,
	}

	o.status = target
	o.updatedAt = now
	o.history = append(o.history, entry)
	return entry, nil
}

// Cancel forces the order into CANCELLED with a history entry carrying the
// reason and the cancelling actor. Fails with a state conflict when the
// order already reached a terminal status.
func (o *Order) Cancel(reason, cancelledBy string, now time.Time) (HistoryEntry, error) {
	if err := o.Validate(); err != nil {
		return HistoryEntry{}, err
	}
	if o.status.IsTerminal() {
		return HistoryEntry{}, errs.NewStateConflictErrorWithCause(
			"order cannot be cancelled",
			fmt.Errorf("status is %s", o.status),
		)
	}

	entry := HistoryEntry{
		Action:    ActionCancelled,
		Status:    StatusCancelled,
		Timestamp: now,
		By:        cancelledBy,
		Reason:    reason,
	}

	o.status = StatusCancelled
	o.updatedAt = now
	o.history = append(o.history, entry)
	return entry, nil
}

// Suspend records that the order is waiting at the named step for an
// external confirmation, holding the orchestrator's continuation token.
// Re-suspending overwrites the previous marker: only one confirmation is
// expected at a time per order, so last write wins.
func (o *Order) Suspend(step, taskToken string, now time.Time) (Suspension, error) {
	if err := o.Validate(); err != nil {
		return Suspension{}, err
	}
	if o.status.IsTerminal() {
		return Suspension{}, errs.NewStateConflictErrorWithCause(
			"order cannot be suspended",
			fmt.Errorf("status is %s", o.status),
		)
	}

	suspension, err := NewSuspension(step, taskToken, now)
	if err != nil {
		return Suspension{}, err
	}

	o.suspension = &suspension
	return suspension, nil
}

// ConfirmStep validates that the order is waiting on exactly the expected
// step and returns the suspension so the caller can resume the orchestrator.
// A mismatched or absent step is a state conflict, as is a marker that lost
// its token to a partial write. The caller clears the marker after resuming.
func (o *Order) ConfirmStep(expectedStep string) (Suspension, error) {
	if err := o.Validate(); err != nil {
		return Suspension{}, err
	}
	if expectedStep == "" {
		return Suspension{}, errs.NewValueIsRequiredError("expectedStep")
	}
	if o.suspension == nil || o.suspension.Step() != expectedStep {
		return Suspension{}, errs.NewStateConflictError(
			fmt.Sprintf("order is not waiting for step %s", expectedStep),
		)
	}
	if o.suspension.TaskToken() == "" {
		return Suspension{}, errs.NewStateConflictError("no pending task token")
	}

	return *o.suspension, nil
}

// ClearSuspension removes the suspension marker after a confirmation has
// been processed.
func (o *Order) ClearSuspension() {
	o.suspension = nil
}

// AppendEvent appends one ingested domain event to the event log. Duplicate
// deliveries append additional entries; the log is not deduplicated.
func (o *Order) AppendEvent(entry EventEntry) {
	o.eventHistory = append(o.eventHistory, entry)
}

// StepsCompleted counts the recognized flow actions present in the workflow
// history. The ingested-event log deliberately does not participate: the bus
// is at-least-once, so counting it would double-count duplicates.
func (o *Order) StepsCompleted() int {
	count := 0
	for _, entry := range o.history {
		if entry.Action.IsFlowAction() {
			count++
		}
	}
	return count
}
