package models

import "time"

// OrderItem represents a single item within an order. Size identifies the
// product variation the item was bought in.
type OrderItem struct {
	ProductID string  `json:"product_id" validate:"required"`
	Size      Size    `json:"size" validate:"required,oneof=XS S M L XL XXL XXXL"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	Price     float64 `json:"price"` // Price at the time of order
}

// Order represents a customer order.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Items       []OrderItem `json:"items" gorm:"serializer:json"`
	TotalAmount float64     `json:"total_amount"`
	Status      string      `json:"status"` // e.g., "pending", "processing", "shipped", "delivered", "cancelled"
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
