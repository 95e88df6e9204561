package repositories

import "katalog/internal/models"

// OrderStats holds the order aggregate the analytics aggregator reports.
// An empty order collection yields all zeros.
type OrderStats struct {
	TotalOrders   int64   `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	AvgOrderValue float64 `json:"avgOrderValue"`
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByID(id string) (*models.Order, error)
	Create(order *models.Order) error
	UpdateStatus(id string, status string) error
	Count() (int64, error)
	Stats() (OrderStats, error)
}
