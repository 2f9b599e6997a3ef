package queries

import (
	"iter"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/order"
)

// TimelineSource tags which log a timeline entry came from.
type TimelineSource string

const (
	// SourceWorkflow marks entries from the workflow transition history.
	SourceWorkflow TimelineSource = "workflow"

	// SourceEventBus marks entries from the ingested-event log.
	SourceEventBus TimelineSource = "event-bus"
)

// TimelineEntry is one row of the merged order timeline.
type TimelineEntry struct {
	Source    TimelineSource   `json:"source"`
	Label     string           `json:"label"`
	Status    order.Status     `json:"status,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	By        string           `json:"by,omitempty"`
	StaffID   string           `json:"staff_id,omitempty"`
	StaffName string           `json:"staff_name,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Total     *decimal.Decimal `json:"total,omitempty"`
}

// orderTimeline merges the workflow history and the ingested-event log into
// one sequence, ascending by timestamp. Ties order workflow entries before
// event-bus entries and otherwise preserve append order; both follow from the
// stable sort over the workflow-first concatenation.
//
// The sequence is restartable: each range performs the merge anew, so callers
// may iterate it more than once or stop early.
func orderTimeline(aggregate *order.Order) iter.Seq[TimelineEntry] {
	return func(yield func(TimelineEntry) bool) {
		history := aggregate.History()
		events := aggregate.EventHistory()

		merged := make([]TimelineEntry, 0, len(history)+len(events))
		for _, entry := range history {
			merged = append(merged, TimelineEntry{
				Source:    SourceWorkflow,
				Label:     string(entry.Action),
				Status:    entry.Status,
				Timestamp: entry.Timestamp,
				By:        entry.By,
				StaffID:   entry.StaffID,
				StaffName: entry.StaffName,
				Reason:    entry.Reason,
			})
		}
		for _, entry := range events {
			merged = append(merged, TimelineEntry{
				Source:    SourceEventBus,
				Label:     entry.EventLabel,
				Status:    entry.Status,
				Timestamp: entry.Timestamp,
				StaffID:   entry.StaffID,
				StaffName: entry.StaffName,
				Reason:    entry.Reason,
				Total:     entry.Total,
			})
		}

		sort.SliceStable(merged, func(i, j int) bool {
			return merged[i].Timestamp.Before(merged[j].Timestamp)
		})

		for _, entry := range merged {
			if !yield(entry) {
				return
			}
		}
	}
}
