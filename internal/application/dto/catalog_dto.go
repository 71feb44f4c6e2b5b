package dto

import "time"

// CreateCustomerRequest payload for POST /api/customers.
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CustomerResponse customer plus live order count for listings.
type CustomerResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	TotalOrders int64     `json:"total_orders"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateProductRequest payload for POST /api/products.
type CreateProductRequest struct {
	Name string `json:"name"`
	UPC  string `json:"upc"`
}

// ProductResponse product catalog entry.
type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UPC       string    `json:"upc"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCategoryRequest payload for POST /api/categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse category entry.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateGarageItemRequest payload for POST /api/garage-items.
// Money fields arrive as strings to avoid float rounding on the wire.
type CreateGarageItemRequest struct {
	ProductID      string `json:"product_id"`
	Description    string `json:"description"`
	ProductCost    string `json:"product_cost"`
	RetailPrice    string `json:"retail_price"`
	QuantityOnHand int64  `json:"quantity_on_hand"`
	CategoryID     string `json:"category_id"`
}

// GarageItemResponse stocked item.
type GarageItemResponse struct {
	ID             string    `json:"id"`
	ProductID      string    `json:"product_id"`
	Description    string    `json:"description"`
	ProductCost    string    `json:"product_cost"`
	RetailPrice    string    `json:"retail_price"`
	QuantityOnHand int64     `json:"quantity_on_hand"`
	CategoryID     string    `json:"category_id"`
	CreatedAt      time.Time `json:"created_at"`
}

// GarageItemListResponse items plus the catalogs the inventory view needs.
type GarageItemListResponse struct {
	Items      []*GarageItemResponse `json:"items"`
	Categories []*CategoryResponse   `json:"categories"`
	Products   []*ProductResponse    `json:"products"`
}
