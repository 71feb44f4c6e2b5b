package entity

import "time"

// Customer is a buyer of garage items. Email is unique.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CustomerWithOrders is a customer plus the number of live orders
// referencing it (listing view).
type CustomerWithOrders struct {
	Customer
	TotalOrders int64
}
