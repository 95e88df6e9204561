package services

import (
	"encoding/json"
	"fmt"
	"log"

	"katalog/internal/models"
	"katalog/internal/repositories"
	"katalog/pkg/rabbitmq"
)

// OrderService handles business logic related to orders. Orders price their
// items from the product variation matching the requested size.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	mqClient    *rabbitmq.Client
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		mqClient:    mqClient,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id string) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder creates a new order. Each item is resolved against the
// product's variation for the requested size; the variation's current price
// and stock decide the line price and whether the order is accepted.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	var totalAmount float64
	var processedItems []models.OrderItem

	for _, item := range orderRequest.Items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("product %s not found: %w", item.ProductID, err)
		}

		var variation *models.Variation
		for i := range product.Variations {
			if product.Variations[i].Size == item.Size {
				variation = &product.Variations[i]
				break
			}
		}
		if variation == nil {
			return nil, fmt.Errorf("product %s has no %s variation", product.Name, item.Size)
		}
		if variation.Stock < item.Quantity {
			return nil, fmt.Errorf("insufficient stock for product %s size %s (requested: %d, available: %d)", product.Name, item.Size, item.Quantity, variation.Stock)
		}

		processedItems = append(processedItems, models.OrderItem{
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Price:     variation.Price,
		})
		totalAmount += variation.Price * float64(item.Quantity)
	}

	newOrder := &models.Order{
		UserID:      orderRequest.UserID,
		Items:       processedItems,
		TotalAmount: totalAmount,
		Status:      "pending",
	}
	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	if s.mqClient != nil {
		event := map[string]interface{}{
			"orderID": newOrder.ID,
			"userID":  newOrder.UserID,
			"status":  newOrder.Status,
			"total":   newOrder.TotalAmount,
		}
		body, err := json.Marshal(event)
		if err != nil {
			log.Printf("Failed to marshal order event: %v", err)
		} else if err := s.mqClient.Publish("order.created", body); err != nil {
			log.Printf("Warning: failed to publish order created event for order %s: %v", newOrder.ID, err)
		}
	}

	return newOrder, nil
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	validStatuses := map[string]bool{"pending": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if _, ok := validStatuses[status]; !ok {
		return fmt.Errorf("invalid order status: %s", status)
	}

	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}
