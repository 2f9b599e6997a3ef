package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// EventType identifies a domain event announced on the bus.
type EventType string

const (
	EventOrderReceived    EventType = "OrderReceived"
	EventOrderInitialized EventType = "OrderInitialized"
	EventCookingStarted   EventType = "CookingStarted"
	EventPackingStarted   EventType = "PackingStarted"
	EventDeliveryStarted  EventType = "DeliveryStarted"
	EventOrderDelivered   EventType = "OrderDelivered"
	EventOrderCancelled   EventType = "OrderCancelled"
)

// eventLabels maps event types to the short labels shown on timelines.
var eventLabels = map[EventType]string{
	EventOrderReceived:    "order_received",
	EventOrderInitialized: "order_initialized",
	EventCookingStarted:   "cooking_started",
	EventPackingStarted:   "packing_started",
	EventDeliveryStarted:  "delivery_started",
	EventOrderDelivered:   "order_delivered",
	EventOrderCancelled:   "order_cancelled",
}

// Label returns the timeline label for the event type. Unknown types fall
// back to the raw type name so foreign events still render.
func (t EventType) Label() string {
	if label, ok := eventLabels[t]; ok {
		return label
	}
	return string(t)
}

// Event is the wire form of a domain event. One event is published per
// committed state change; delivery is best-effort and at-least-once, so
// consumers must tolerate duplicates and arbitrary ordering.
type Event struct {
	EventType  EventType        `json:"event_type"`
	TenantID   string           `json:"tenant_id"`
	OrderID    string           `json:"order_id"`
	CustomerID string           `json:"customer_id,omitempty"`
	Status     Status           `json:"status,omitempty"`
	StaffID    string           `json:"staff_id,omitempty"`
	StaffName  string           `json:"staff_name,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
	EventTime  time.Time        `json:"event_time"`
}
