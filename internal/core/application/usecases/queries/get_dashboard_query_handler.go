package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// GetDashboardQueryHandler computes the tenant dashboard from live orders.
type GetDashboardQueryHandler struct {
	orders ports.OrderRepository
	now    func() time.Time
}

// NewGetDashboardQueryHandler creates a handler for dashboard queries.
func NewGetDashboardQueryHandler(orders ports.OrderRepository) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{orders: orders, now: func() time.Time { return time.Now().UTC() }}
}

// Handle aggregates the matching orders: per-status counts zero-filled over
// the full enum, mean and max wait in minutes, and the exact decimal sum of
// order totals.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	var (
		aggregates []*order.Order
		err        error
	)
	if status, ok := query.StatusFilter(); ok {
		aggregates, err = h.orders.FindByStatus(ctx, query.TenantID(), status)
	} else {
		aggregates, err = h.orders.FindByTenant(ctx, query.TenantID())
	}
	if err != nil {
		return GetDashboardQueryResponse{}, err
	}

	now := h.now()
	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status] = 0
	}

	rows := make([]DashboardOrder, 0, len(aggregates))
	totalWait := 0
	maxWait := 0
	totalValue := decimal.Zero
	for _, aggregate := range aggregates {
		wait := int(now.Sub(aggregate.CreatedAt()).Minutes())
		if wait < 0 {
			wait = 0
		}
		if wait > maxWait {
			maxWait = wait
		}
		totalWait += wait
		totalValue = totalValue.Add(aggregate.Total())
		counts[aggregate.Status()]++

		row := DashboardOrder{
			OrderID:        aggregate.Key().OrderID(),
			CustomerID:     aggregate.CustomerID(),
			Status:         aggregate.Status(),
			Total:          aggregate.Total(),
			WaitMinutes:    wait,
			StepsCompleted: aggregate.StepsCompleted(),
			CreatedAt:      aggregate.CreatedAt(),
		}
		if suspension := aggregate.Suspension(); suspension != nil {
			row.PendingStep = suspension.Step()
		}
		rows = append(rows, row)
	}

	mean := 0.0
	if len(rows) > 0 {
		mean = float64(totalWait) / float64(len(rows))
	}

	return GetDashboardQueryResponse{
		Orders:          rows,
		StatusCounts:    counts,
		TotalOrders:     len(rows),
		MeanWaitMinutes: mean,
		MaxWaitMinutes:  maxWait,
		TotalValue:      totalValue,
		GeneratedAt:     now,
	}, nil
}
