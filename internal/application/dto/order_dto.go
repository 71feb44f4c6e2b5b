package dto

import "time"

// PlaceOrderRequest payload for POST /api/orders.
// CustomerID is ignored for buy orders.
type PlaceOrderRequest struct {
	CustomerID   string    `json:"customer_id"`
	GarageItemID string    `json:"garage_item_id"`
	OrderDate    time.Time `json:"order_date"`
	OrderType    string    `json:"order_type"`
	Quantity     int64     `json:"quantity"`
}

// OrderResponse a persisted order.
type OrderResponse struct {
	ID           string    `json:"id"`
	CustomerID   *string   `json:"customer_id"`
	GarageItemID string    `json:"garage_item_id"`
	OrderDate    time.Time `json:"order_date"`
	OrderType    string    `json:"order_type"`
	Quantity     int64     `json:"quantity"`
	CreatedAt    time.Time `json:"created_at"`
}

// PlaceOrderResponse order plus the item as it stands after reconciliation.
type PlaceOrderResponse struct {
	Order *OrderResponse      `json:"order"`
	Item  *GarageItemResponse `json:"item"`
}

// OrderListResponse orders plus the catalogs the orders view needs.
type OrderListResponse struct {
	Orders      []*OrderResponse      `json:"orders"`
	Customers   []*CustomerResponse   `json:"customers"`
	GarageItems []*GarageItemResponse `json:"garage_items"`
	Products    []*ProductResponse    `json:"products"`
}
