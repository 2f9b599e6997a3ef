package order

import (
	"github.com/shopspring/decimal"

	"fulfillment/internal/pkg/errs"
)

// Item is one order line: a product reference, a quantity and the unit price
// at the time of ordering. Prices use exact decimal arithmetic; monetary
// values are never represented as floats.
//
// Item is immutable; construct it via NewItem.
type Item struct {
	productID string
	quantity  int
	price     decimal.Decimal
}

// NewItem creates an order line after validating its parts.
// ProductID is required, quantity must be positive, and the unit price must
// not be negative (free items are legal).
func NewItem(productID string, quantity int, price decimal.Decimal) (Item, error) {
	if productID == "" {
		return Item{}, errs.NewValueIsRequiredError("productID")
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if quantity > maxItemQuantity {
		return Item{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if price.IsNegative() {
		return Item{}, errs.NewValueIsInvalidError("price")
	}

	return Item{productID: productID, quantity: quantity, price: price}, nil
}

// maxItemQuantity bounds a single line; larger orders are split upstream.
const maxItemQuantity = 1000

// ProductID returns the referenced product identifier.
func (i Item) ProductID() string {
	return i.productID
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price.
func (i Item) Price() decimal.Decimal {
	return i.price
}

// Subtotal returns price multiplied by quantity, exactly.
func (i Item) Subtotal() decimal.Decimal {
	return i.price.Mul(decimal.NewFromInt(int64(i.quantity)))
}
