// Package orderrepo persists order aggregates in postgres. One row per
// order; line items and the two append-only logs live in jsonb columns so
// appends can use jsonb concatenation instead of row rewrites.
package orderrepo

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderDTO is the database shape of an order aggregate. The composite
// primary key scopes every access by tenant; the secondary indexes back the
// status and customer listings.
type OrderDTO struct {
	TenantID   string          `gorm:"primaryKey;column:tenant_id"`
	OrderID    string          `gorm:"primaryKey;column:order_id"`
	CustomerID string          `gorm:"column:customer_id;index:idx_orders_tenant_customer,priority:2"`
	Status     string          `gorm:"column:status;index:idx_orders_tenant_status,priority:2"`
	Total      decimal.Decimal `gorm:"column:total;type:numeric(12,2)"`

	Items        json.RawMessage `gorm:"column:items;type:jsonb"`
	History      json.RawMessage `gorm:"column:history;type:jsonb"`
	EventHistory json.RawMessage `gorm:"column:event_history;type:jsonb"`

	// Suspension triple: all three set or all three null.
	PendingStep      *string    `gorm:"column:pending_step"`
	PendingTaskToken *string    `gorm:"column:pending_task_token"`
	PendingUpdatedAt *time.Time `gorm:"column:pending_updated_at"`

	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	LastEventUpdate *time.Time `gorm:"column:last_event_update"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// itemDTO is the jsonb shape of one order line.
type itemDTO struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func fromDomain(aggregate *order.Order) (OrderDTO, error) {
	items := make([]itemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDTO{
			ProductID: item.ProductID(),
			Quantity:  item.Quantity(),
			Price:     item.Price(),
		})
	}

	rawItems, err := json.Marshal(items)
	if err != nil {
		return OrderDTO{}, err
	}
	// Empty logs must serialize as [], not null: jsonb concatenation is the
	// append path and null breaks it.
	history := aggregate.History()
	if history == nil {
		history = []order.HistoryEntry{}
	}
	events := aggregate.EventHistory()
	if events == nil {
		events = []order.EventEntry{}
	}

	rawHistory, err := json.Marshal(history)
	if err != nil {
		return OrderDTO{}, err
	}
	rawEvents, err := json.Marshal(events)
	if err != nil {
		return OrderDTO{}, err
	}

	dto := OrderDTO{
		TenantID:     aggregate.Key().TenantID(),
		OrderID:      aggregate.Key().OrderID(),
		CustomerID:   aggregate.CustomerID(),
		Status:       aggregate.Status().String(),
		Total:        aggregate.Total(),
		Items:        rawItems,
		History:      rawHistory,
		EventHistory: rawEvents,
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	if suspension := aggregate.Suspension(); suspension != nil {
		step := suspension.Step()
		token := suspension.TaskToken()
		since := suspension.Since()
		dto.PendingStep = &step
		dto.PendingTaskToken = &token
		dto.PendingUpdatedAt = &since
	}

	return dto, nil
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	key, err := kernel.NewOrderKey(dto.TenantID, dto.OrderID)
	if err != nil {
		return nil, err
	}

	var itemDTOs []itemDTO
	if len(dto.Items) > 0 {
		if err := json.Unmarshal(dto.Items, &itemDTOs); err != nil {
			return nil, err
		}
	}
	items := make([]order.Item, 0, len(itemDTOs))
	for _, raw := range itemDTOs {
		item, err := order.NewItem(raw.ProductID, raw.Quantity, raw.Price)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var history []order.HistoryEntry
	if len(dto.History) > 0 {
		if err := json.Unmarshal(dto.History, &history); err != nil {
			return nil, err
		}
	}

	var events []order.EventEntry
	if len(dto.EventHistory) > 0 {
		if err := json.Unmarshal(dto.EventHistory, &events); err != nil {
			return nil, err
		}
	}

	var suspension *order.Suspension
	if dto.PendingStep != nil || dto.PendingTaskToken != nil {
		step, token := "", ""
		since := time.Time{}
		if dto.PendingStep != nil {
			step = *dto.PendingStep
		}
		if dto.PendingTaskToken != nil {
			token = *dto.PendingTaskToken
		}
		if dto.PendingUpdatedAt != nil {
			since = *dto.PendingUpdatedAt
		}
		restored := order.RestoreSuspension(step, token, since)
		suspension = &restored
	}

	return order.RestoreOrder(
		key,
		dto.CustomerID,
		items,
		dto.Total,
		order.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		history,
		events,
		suspension,
	)
}
