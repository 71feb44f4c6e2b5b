package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GarageItem is a stocked inventory item for sale in the garage.
// QuantityOnHand is mutated only by the order reconciliation use case.
type GarageItem struct {
	ID             string
	ProductID      string
	Description    string
	ProductCost    decimal.Decimal // acquisition cost per unit
	RetailPrice    decimal.Decimal // asking price per unit
	QuantityOnHand int64
	CategoryID     string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
