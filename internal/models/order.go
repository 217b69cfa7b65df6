package models

import "time"

// OrderStatus enumerates the lifecycle states of an order.
type OrderStatus string

const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusDone      OrderStatus = "done"
)

// Valid reports whether the status is one of the known lifecycle states.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusCreated, OrderStatusPaid, OrderStatusCancelled, OrderStatusDone:
		return true
	}
	return false
}

// Order is a customer order owning one or more line items.
type Order struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null"`
	User      User        `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Status    OrderStatus `json:"status" gorm:"size:16;not null;default:created"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Items     []OrderItem `json:"items" gorm:"constraint:OnDelete:CASCADE"`
}

// OrderItem holds the quantity and price snapshot for one product in an order.
// PriceAtOrder is frozen at creation and never recomputed from current stock.
type OrderItem struct {
	ID           uint    `json:"id" gorm:"primaryKey"`
	OrderID      uint    `json:"-" gorm:"not null"`
	ProductID    uint    `json:"product_id" gorm:"not null"`
	Product      Product `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	Quantity     int     `json:"quantity" gorm:"not null"`
	PriceAtOrder float64 `json:"price_at_order" gorm:"not null"`
}

// OrderItemRequest names a stock row and the quantity to order from it.
type OrderItemRequest struct {
	ProductStockID uint `json:"product_stock_id" validate:"required"`
	Quantity       int  `json:"quantity" validate:"required,gt=0"`
}
