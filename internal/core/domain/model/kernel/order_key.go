package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// ErrOrderKeyIsNotConstructed indicates that an OrderKey was not created through NewOrderKey.
// This error is returned when validating a zero-value OrderKey.
var ErrOrderKeyIsNotConstructed = errs.NewValueIsRequiredError("OrderKey must be created via NewOrderKey")

// OrderKey is the composite identity of an order: the tenant namespace plus
// the order identifier. Every read and write against the order store is
// addressed by this pair; the pair is never reassigned once an order exists.
//
// OrderKey is immutable and safe for concurrent use. The zero value is
// invalid and must be constructed via NewOrderKey.
//
// Example usage:
//
//	key, err := kernel.NewOrderKey("LIMA_CENTRO", kernel.NewUUID().String())
//	if err != nil {
//	    // handle error
//	}
//	order, err := repo.Get(ctx, key)
type OrderKey struct {
	tenantID string
	orderID  string
}

// NewOrderKey creates an OrderKey from a tenant identifier and an order
// identifier. Both parts are required; whitespace-only values are not
// checked beyond emptiness because tenant identifiers are opaque strings
// issued by the platform.
func NewOrderKey(tenantID, orderID string) (OrderKey, error) {
	if tenantID == "" {
		return OrderKey{}, errs.NewValueIsRequiredError("tenantID")
	}
	if orderID == "" {
		return OrderKey{}, errs.NewValueIsRequiredError("orderID")
	}

	return OrderKey{tenantID: tenantID, orderID: orderID}, nil
}

// TenantID returns the tenant namespace of the key.
func (k OrderKey) TenantID() string {
	return k.tenantID
}

// OrderID returns the order identifier of the key.
func (k OrderKey) OrderID() string {
	return k.orderID
}

// String returns the canonical "tenant/order" rendering of the key.
// Used in logs and error payloads.
func (k OrderKey) String() string {
	return fmt.Sprintf("%s/%s", k.tenantID, k.orderID)
}

// IsEqual compares two keys for equality.
func (k OrderKey) IsEqual(other OrderKey) bool {
	return k.tenantID == other.tenantID && k.orderID == other.orderID
}

// Validate checks that the key was created via NewOrderKey.
// Returns ErrOrderKeyIsNotConstructed for a zero value.
func (k OrderKey) Validate() error {
	if k.tenantID == "" || k.orderID == "" {
		return ErrOrderKeyIsNotConstructed
	}
	return nil
}
