package entity

import "time"

// Product is a catalog entry identified by its universal product code.
// Cost, price and stock live on GarageItem, not here.
type Product struct {
	ID        string
	Name      string
	UPC       string // universal_product_code
	CreatedAt time.Time
}
