package queries

import (
	"errors"
	"iter"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderTimelineQueryIsNotConstructed = errors.New(
	"GetOrderTimelineQuery must be created via NewGetOrderTimelineQuery constructor",
)

// GetOrderTimelineQuery retrieves the merged event timeline of one order.
type GetOrderTimelineQuery struct {
	key kernel.OrderKey

	guard guard.ConstructorGuard
}

// NewGetOrderTimelineQuery creates a timeline query for the given order.
func NewGetOrderTimelineQuery(key kernel.OrderKey) (GetOrderTimelineQuery, error) {
	if err := key.Validate(); err != nil {
		return GetOrderTimelineQuery{}, err
	}
	return GetOrderTimelineQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderTimelineQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderTimelineQueryIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (q GetOrderTimelineQuery) Key() kernel.OrderKey {
	return q.key
}

// TimelineStatistics summarizes the order's progress for dashboards.
// StepsCompleted counts recognized flow actions from the workflow history
// only; the event log never contributes, so duplicate bus deliveries cannot
// inflate the count.
type TimelineStatistics struct {
	CurrentStatus  order.Status `json:"current_status"`
	ElapsedMinutes int          `json:"elapsed_minutes"`
	TotalEntries   int          `json:"total_entries"`
	StepsCompleted int          `json:"steps_completed"`
}

// GetOrderTimelineQueryResponse carries the merged timeline sequence and its
// summary statistics. Entries is restartable; rendering layers may range it
// as often as needed.
type GetOrderTimelineQueryResponse struct {
	OrderID    string
	TenantID   string
	Entries    iter.Seq[TimelineEntry]
	Statistics TimelineStatistics
}
