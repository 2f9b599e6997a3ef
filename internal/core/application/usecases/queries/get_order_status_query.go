package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrderStatusQueryIsNotConstructed = errors.New(
	"GetOrderStatusQuery must be created via NewGetOrderStatusQuery constructor",
)

// GetOrderStatusQuery retrieves the current lifecycle state of one order.
type GetOrderStatusQuery struct {
	key kernel.OrderKey

	guard guard.ConstructorGuard
}

// NewGetOrderStatusQuery creates a status query for the given order.
func NewGetOrderStatusQuery(key kernel.OrderKey) (GetOrderStatusQuery, error) {
	if err := key.Validate(); err != nil {
		return GetOrderStatusQuery{}, err
	}
	return GetOrderStatusQuery{key: key, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusQueryIsNotConstructed)
}

// Key returns the composite tenant/order identity.
func (q GetOrderStatusQuery) Key() kernel.OrderKey {
	return q.key
}

// GetOrderStatusQueryResponse is the point-in-time status view of an order.
// PendingStep is set only while the order awaits a confirmation.
type GetOrderStatusQueryResponse struct {
	OrderID     string       `json:"order_id"`
	TenantID    string       `json:"tenant_id"`
	Status      order.Status `json:"status"`
	Progress    int          `json:"progress"`
	PendingStep string       `json:"pending_step,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
