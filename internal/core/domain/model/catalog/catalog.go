// Package catalog holds the tenant-scoped reference data that orders point
// at: the product catalog and the staff/customer user records. These are
// plain keyed records, not aggregates; there is no lifecycle to protect.
package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// Product is one catalog entry. Price uses exact decimal arithmetic and is
// copied onto order lines at placement time, so later catalog edits never
// reprice existing orders.
type Product struct {
	TenantID  string
	ProductID string
	Name      string
	Price     decimal.Decimal
	Category  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a product record must carry.
func (p Product) Validate() error {
	if p.TenantID == "" {
		return errs.NewValueIsRequiredError("tenantID")
	}
	if p.ProductID == "" {
		return errs.NewValueIsRequiredError("productID")
	}
	if p.Name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if p.Price.IsNegative() {
		return errs.NewValueIsInvalidError("price")
	}
	return nil
}

// User is one tenant user record, covering both customers and staff.
type User struct {
	TenantID  string
	UserID    string
	Email     string
	Name      string
	Role      string
	CreatedAt time.Time
}

// Validate checks the fields a user record must carry.
func (u User) Validate() error {
	if u.TenantID == "" {
		return errs.NewValueIsRequiredError("tenantID")
	}
	if u.UserID == "" {
		return errs.NewValueIsRequiredError("userID")
	}
	if u.Email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	return nil
}
