package services

import (
	"encoding/json"
	"log"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/pkg/rabbitmq"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo repositories.OrderRepository
	mqClient  *rabbitmq.Client
}

// NewOrderService creates a new OrderService. The RabbitMQ client may be nil,
// in which case order events are not published.
func NewOrderService(orderRepo repositories.OrderRepository, mqClient *rabbitmq.Client) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		mqClient:  mqClient,
	}
}

// GetOrdersFor lists all orders for admins and only the user's own orders
// otherwise.
func (s *OrderService) GetOrdersFor(user *models.User) ([]models.Order, error) {
	if user.Role == models.RoleAdmin {
		return s.orderRepo.GetAll()
	}
	return s.orderRepo.GetAllByUser(user.ID)
}

// GetOrderFor retrieves a single order. Customers may only access their own
// orders.
func (s *OrderService) GetOrderFor(user *models.User, id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user.Role != models.RoleAdmin && order.UserID != user.ID {
		return nil, apperrors.New(apperrors.KindForbidden, "not allowed to access this order")
	}
	return order, nil
}

// PlaceOrder validates the item list, delegates the atomic stock-decrement
// and creation step to the repository, then runs the post-commit hooks.
func (s *OrderService) PlaceOrder(user *models.User, items []models.OrderItemRequest) (*models.Order, error) {
	if len(items) == 0 {
		return nil, apperrors.New(apperrors.KindBadRequest, "order must contain items")
	}

	order, err := s.orderRepo.Create(user.ID, items)
	if err != nil {
		return nil, err
	}

	ProcessPaymentPlaceholder(order)
	s.publishOrderCreated(order)
	return order, nil
}

// UpdateStatus sets the status of an order. Admin only, enforced at the
// route level.
func (s *OrderService) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, apperrors.New(apperrors.KindBadRequest, "invalid order status: "+string(status))
	}
	return s.orderRepo.UpdateStatus(id, status)
}

// publishOrderCreated emits an order.created event. Publication failures are
// logged, never surfaced to the caller: the order has already committed.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		return
	}
	event := map[string]interface{}{
		"event":    "order.created",
		"order_id": order.ID,
		"user_id":  order.UserID,
		"status":   order.Status,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("warning: failed to marshal order event for order %d: %v", order.ID, err)
		return
	}
	if err := s.mqClient.Publish(rabbitmq.QueueOrderEvents, body); err != nil {
		log.Printf("warning: failed to publish order created event for order %d: %v", order.ID, err)
	}
}
