package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersByStatusQuery or NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersQuery retrieves a tenant's orders filtered by status or by
// customer. Exactly one filter is set, decided by the constructor used.
type GetOrdersQuery struct {
	tenantID   string
	status     order.Status
	customerID string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a listing query filtered by status.
// An unrecognized status is a validation error, not an empty result.
func NewGetOrdersByStatusQuery(tenantID string, status order.Status) (GetOrdersQuery, error) {
	if tenantID == "" {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("tenantID")
	}
	if err := status.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	return GetOrdersQuery{tenantID: tenantID, status: status, guard: guard.NewConstructorGuard()}, nil
}

// NewGetOrdersByCustomerQuery creates a listing query filtered by customer.
func NewGetOrdersByCustomerQuery(tenantID, customerID string) (GetOrdersQuery, error) {
	if tenantID == "" {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("tenantID")
	}
	if customerID == "" {
		return GetOrdersQuery{}, errs.NewValueIsRequiredError("customerID")
	}
	return GetOrdersQuery{tenantID: tenantID, customerID: customerID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// TenantID returns the tenant being listed.
func (q GetOrdersQuery) TenantID() string {
	return q.tenantID
}

// Status returns the status filter; empty when filtering by customer.
func (q GetOrdersQuery) Status() order.Status {
	return q.status
}

// CustomerID returns the customer filter; empty when filtering by status.
func (q GetOrdersQuery) CustomerID() string {
	return q.customerID
}

// OrderSummary is one row of an order listing.
type OrderSummary struct {
	OrderID    string          `json:"order_id"`
	CustomerID string          `json:"customer_id"`
	Status     order.Status    `json:"status"`
	Total      decimal.Decimal `json:"total"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
