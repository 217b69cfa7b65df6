package repositories

import "pasar/internal/models"

// OrderRepository defines the interface for order data access. Create owns
// the transactional stock-decrement step, so callers get all-or-nothing
// semantics without orchestrating the transaction themselves.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetAllByUser(userID uint) ([]models.Order, error)
	GetByID(id uint) (*models.Order, error)
	Create(userID uint, items []models.OrderItemRequest) (*models.Order, error)
	UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error)
}
