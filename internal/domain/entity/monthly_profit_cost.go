package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyProfitCost is one row of the monthly revenue report
// (read-only; maintained outside this service).
type MonthlyProfitCost struct {
	ID      string
	Month   time.Time // first day of the month
	Revenue decimal.Decimal
	Cost    decimal.Decimal
	Profit  decimal.Decimal
}
