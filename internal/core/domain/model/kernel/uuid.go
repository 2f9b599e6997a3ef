package kernel

import (
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID")

// UUID identifies a newly created order. The service mints one per order it
// accepts; identities arriving from outside (orchestrator transitions, bus
// events) stay opaque strings and are never parsed back into this type.
//
// The zero value is invalid; Validate reports it.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version-4 identifier.
//
// Example:
//
//	key, err := kernel.NewOrderKey("LIMA_CENTRO", kernel.NewUUID().String())
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// This is the shape stored in the order key and carried on the wire.
func (u UUID) String() string {
	return u.id.String()
}

// Validate reports ErrUUIDIsNotConstructed for a zero value.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
