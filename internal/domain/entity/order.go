package entity

import "time"

// Order types. A buy order restocks an item (no customer involved);
// a sell order moves stock out to a customer.
const (
	OrderTypeBuy  = "buy"
	OrderTypeSell = "sell"
)

// Order records an inventory acquisition or disposal against a garage item.
// Immutable once created; the only lifecycle operation after that is deletion,
// which reverses its quantity effect.
type Order struct {
	ID           string
	CustomerID   *string // nil for buy orders
	GarageItemID string
	OrderDate    time.Time
	Type         string // buy, sell
	Quantity     int64  // always positive; direction comes from Type
	CreatedAt    time.Time
}

// QuantityDelta is the signed effect this order has on the item's
// quantity on hand: positive for buy, negative for sell.
func (o *Order) QuantityDelta() int64 {
	if o.Type == OrderTypeSell {
		return -o.Quantity
	}
	return o.Quantity
}
