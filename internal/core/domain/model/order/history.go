package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Actor identifies who performed a workflow step. All fields are optional:
// automatic steps carry none, customer-initiated steps carry By, and
// staff-confirmed steps carry the staff pair.
type Actor struct {
	By        string
	StaffID   string
	StaffName string
}

// HistoryEntry is one record of the append-only workflow log. Entries are
// written together with the status change they describe, in the same atomic
// update, so a reader never observes one without the other.
type HistoryEntry struct {
	Action    Action    `json:"action"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	By        string    `json:"by,omitempty"`
	StaffID   string    `json:"staff_id,omitempty"`
	StaffName string    `json:"staff_name,omitempty"`
	Reason    string    `json:"reason,omitempty"`
}

// EventEntry is one record of the append-only ingested-event log. It is
// written by the ingestion consumer only; the workflow never touches this
// log, and the two logs are merged solely at read time. Timestamp is the
// ingestion time; EventTime is the publish time carried by the event.
type EventEntry struct {
	EventType  EventType        `json:"event_type"`
	EventLabel string           `json:"event_label"`
	Timestamp  time.Time        `json:"timestamp"`
	EventTime  time.Time        `json:"event_time"`
	Status     Status           `json:"status,omitempty"`
	CustomerID string           `json:"customer_id,omitempty"`
	StaffID    string           `json:"staff_id,omitempty"`
	StaffName  string           `json:"staff_name,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	Total      *decimal.Decimal `json:"total,omitempty"`
}
