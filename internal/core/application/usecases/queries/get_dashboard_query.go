package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery aggregates a tenant's orders for the operations
// dashboard, optionally narrowed to one status.
type GetDashboardQuery struct {
	tenantID     string
	statusFilter order.Status
	hasFilter    bool

	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a dashboard query. The status filter is
// optional; when present it must be a member of the status enum.
func NewGetDashboardQuery(tenantID string, statusFilter string) (GetDashboardQuery, error) {
	if tenantID == "" {
		return GetDashboardQuery{}, errs.NewValueIsRequiredError("tenantID")
	}

	query := GetDashboardQuery{tenantID: tenantID, guard: guard.NewConstructorGuard()}
	if statusFilter != "" {
		status := order.Status(statusFilter)
		if err := status.Validate(); err != nil {
			return GetDashboardQuery{}, err
		}
		query.statusFilter = status
		query.hasFilter = true
	}
	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// TenantID returns the tenant being aggregated.
func (q GetDashboardQuery) TenantID() string {
	return q.tenantID
}

// StatusFilter returns the optional status filter.
func (q GetDashboardQuery) StatusFilter() (order.Status, bool) {
	return q.statusFilter, q.hasFilter
}

// DashboardOrder is one order row on the dashboard, with its live waiting
// time and how far along the flow it is.
type DashboardOrder struct {
	OrderID        string          `json:"order_id"`
	CustomerID     string          `json:"customer_id"`
	Status         order.Status    `json:"status"`
	Total          decimal.Decimal `json:"total"`
	WaitMinutes    int             `json:"wait_minutes"`
	StepsCompleted int             `json:"steps_completed"`
	PendingStep    string          `json:"pending_step,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// GetDashboardQueryResponse is the aggregated dashboard view. StatusCounts
// is zero-filled across the whole status enum so charts keep a fixed axis
// regardless of which statuses currently occur.
type GetDashboardQueryResponse struct {
	Orders          []DashboardOrder     `json:"orders"`
	StatusCounts    map[order.Status]int `json:"status_counts"`
	TotalOrders     int                  `json:"total_orders"`
	MeanWaitMinutes float64              `json:"mean_wait_minutes"`
	MaxWaitMinutes  int                  `json:"max_wait_minutes"`
	TotalValue      decimal.Decimal      `json:"total_value"`
	GeneratedAt     time.Time            `json:"generated_at"`
}
