package orderrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/metrics"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
//
// All mutations are single UPDATE statements working at column level: log
// appends use jsonb concatenation, so two writers appending to different
// logs of the same order never overwrite each other, and the transition
// update is guarded by the expected current status (compare-and-swap).
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order. A duplicate tenant/order key is a state conflict.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStateConflictErrorWithCause("order already exists", err)
		}
		return err
	}
	return nil
}

// Get retrieves an order by its composite key.
func (r *GormOrderRepository) Get(ctx context.Context, key kernel.OrderKey) (*order.Order, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "tenant_id = ? AND order_id = ?", key.TenantID(), key.OrderID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", key.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ApplyTransition performs the status change and history append as one
// status-guarded UPDATE. Zero rows affected means either the order is gone
// or another writer moved the status first; the two are told apart with a
// follow-up existence check.
func (r *GormOrderRepository) ApplyTransition(ctx context.Context, key kernel.OrderKey, from order.Status, entry order.HistoryEntry) error {
	if err := key.Validate(); err != nil {
		return err
	}

	rawEntry, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET status = ?,
		    updated_at = ?,
		    history = history || ?::jsonb
		WHERE tenant_id = ? AND order_id = ? AND status = ?`,
		entry.Status.String(), entry.Timestamp, string(rawEntry),
		key.TenantID(), key.OrderID(), from.String(),
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return r.missOrConflict(ctx, key, from)
	}

	metrics.TransitionsApplied.WithLabelValues(string(entry.Action)).Inc()
	return nil
}

// SetSuspension writes the suspension triple in one update.
func (r *GormOrderRepository) SetSuspension(ctx context.Context, key kernel.OrderKey, suspension order.Suspension) error {
	if err := key.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND order_id = ?", key.TenantID(), key.OrderID()).
		Updates(map[string]any{
			"pending_step":       suspension.Step(),
			"pending_task_token": suspension.TaskToken(),
			"pending_updated_at": suspension.Since(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

// ClearSuspension nulls the suspension triple and stamps updated_at.
func (r *GormOrderRepository) ClearSuspension(ctx context.Context, key kernel.OrderKey, at time.Time) error {
	if err := key.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND order_id = ?", key.TenantID(), key.OrderID()).
		Updates(map[string]any{
			"pending_step":       nil,
			"pending_task_token": nil,
			"pending_updated_at": nil,
			"updated_at":         at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

// AppendEvent appends one entry to the event log and stamps
// last_event_update. The workflow columns are untouched.
func (r *GormOrderRepository) AppendEvent(ctx context.Context, key kernel.OrderKey, entry order.EventEntry) error {
	if err := key.Validate(); err != nil {
		return err
	}

	rawEntry, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Exec(`
		UPDATE orders
		SET event_history = event_history || ?::jsonb,
		    last_event_update = ?
		WHERE tenant_id = ? AND order_id = ?`,
		string(rawEntry), entry.Timestamp,
		key.TenantID(), key.OrderID(),
	)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return nil
}

// FindByTenant retrieves all orders of the tenant, most recent first.
func (r *GormOrderRepository) FindByTenant(ctx context.Context, tenantID string) ([]*order.Order, error) {
	if tenantID == "" {
		return nil, errs.NewValueIsRequiredError("tenantID")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "tenant_id = ?", tenantID).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// FindByStatus retrieves the tenant's orders in one status, most recent first.
func (r *GormOrderRepository) FindByStatus(ctx context.Context, tenantID string, status order.Status) ([]*order.Order, error) {
	if tenantID == "" {
		return nil, errs.NewValueIsRequiredError("tenantID")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "tenant_id = ? AND status = ?", tenantID, status.String()).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// FindByCustomer retrieves the tenant's orders of one customer, most recent
// first.
func (r *GormOrderRepository) FindByCustomer(ctx context.Context, tenantID string, customerID string) ([]*order.Order, error) {
	if tenantID == "" {
		return nil, errs.NewValueIsRequiredError("tenantID")
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerID")
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&dtos, "tenant_id = ? AND customer_id = ?", tenantID, customerID).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

// FindStaleSuspensions retrieves orders whose suspension marker predates the
// cutoff, across all tenants.
func (r *GormOrderRepository) FindStaleSuspensions(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("pending_updated_at ASC").
		Find(&dtos, "pending_task_token IS NOT NULL AND pending_updated_at < ?", cutoff).Error
	if err != nil {
		return nil, err
	}
	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, aggregate)
	}
	return orders, nil
}

func (r *GormOrderRepository) missOrConflict(ctx context.Context, key kernel.OrderKey, from order.Status) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("tenant_id = ? AND order_id = ?", key.TenantID(), key.OrderID()).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", key.String())
	}
	return errs.NewStateConflictError("order status is no longer " + from.String())
}
