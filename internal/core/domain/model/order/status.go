package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It is a closed enumeration: every persisted status is a member of this set,
// and the set doubles as the fixed reporting axis for dashboards.
//
// State transitions:
//
//	PENDING ──> COOKING ──> PACKING ──> ON_DELIVERY ──> DELIVERED
//	    │           │           │             │
//	    └───────────┴───────────┴─────────────┴──> CANCELLED
//
// DELIVERED and CANCELLED are terminal; no transition leaves them.
type Status string

const (
	// StatusPending is the initial status assigned on order placement.
	StatusPending Status = "PENDING"

	// StatusCooking indicates the kitchen has started preparing the order.
	StatusCooking Status = "COOKING"

	// StatusPacking indicates the order is being packed after the packing
	// step was confirmed by staff.
	StatusPacking Status = "PACKING"

	// StatusOnDelivery indicates the order has left for delivery.
	StatusOnDelivery Status = "ON_DELIVERY"

	// StatusDelivered is the terminal happy-path status.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled is the terminal status reached through cancellation.
	// Cancellation is a status, not a record removal.
	StatusCancelled Status = "CANCELLED"
)

// AllStatuses returns the full enumeration in reporting order.
// Dashboards use it as the zero-filled aggregation axis regardless of which
// statuses are actually present.
func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusCooking,
		StatusPacking,
		StatusOnDelivery,
		StatusDelivered,
		StatusCancelled,
	}
}

// statusProgress maps each status to a coarse completion percentage for
// status displays.
var statusProgress = map[Status]int{
	StatusPending:    10,
	StatusCooking:    35,
	StatusPacking:    60,
	StatusOnDelivery: 85,
	StatusDelivered:  100,
	StatusCancelled:  0,
}

// Validate checks membership in the closed status set.
func (s Status) Validate() error {
	if _, ok := statusProgress[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
	return nil
}

// String returns the persisted representation of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Progress returns the completion percentage shown on status displays.
// Unknown statuses report zero.
func (s Status) Progress() int {
	return statusProgress[s]
}

// Action is a recognized workflow step name. Flow actions advance an order
// along the happy path; ActionCancelled records cancellation.
type Action string

const (
	ActionInit       Action = "INIT"
	ActionCooking    Action = "COOKING"
	ActionPacking    Action = "PACKING"
	ActionOnDelivery Action = "ON_DELIVERY"
	ActionDelivered  Action = "DELIVERED"
	ActionCancelled  Action = "CANCELLED"
)

// actionConfig is one row of the static action-to-status table: the status an
// action produces and the event type announced for it. The table is the
// single source of truth for valid forward steps.
type actionConfig struct {
	status    Status
	eventType EventType
}

var flowActionTable = map[Action]actionConfig{
	ActionInit:       {status: StatusPending, eventType: EventOrderInitialized},
	ActionCooking:    {status: StatusCooking, eventType: EventCookingStarted},
	ActionPacking:    {status: StatusPacking, eventType: EventPackingStarted},
	ActionOnDelivery: {status: StatusOnDelivery, eventType: EventDeliveryStarted},
	ActionDelivered:  {status: StatusDelivered, eventType: EventOrderDelivered},
}

// FlowActions returns the recognized flow actions in path order.
func FlowActions() []Action {
	return []Action{ActionInit, ActionCooking, ActionPacking, ActionOnDelivery, ActionDelivered}
}

// Validate checks that the action is a recognized flow action.
// ActionCancelled is deliberately excluded: cancellation goes through
// Order.Cancel, not the transition table.
func (a Action) Validate() error {
	if _, ok := flowActionTable[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a recognized flow action", string(a)))
	}
	return nil
}

// IsFlowAction reports whether the action is one of the recognized flow
// steps. Step-completion counts include exactly these actions.
func (a Action) IsFlowAction() bool {
	_, ok := flowActionTable[a]
	return ok
}

// TargetStatus returns the status this action produces per the static table.
func (a Action) TargetStatus() (Status, error) {
	cfg, ok := flowActionTable[a]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a recognized flow action", string(a)))
	}
	return cfg.status, nil
}

// EventType returns the domain event type announced for this action.
func (a Action) EventType() (EventType, error) {
	cfg, ok := flowActionTable[a]
	if !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a recognized flow action", string(a)))
	}
	return cfg.eventType, nil
}
