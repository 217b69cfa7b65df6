package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	orderService *services.OrderService
	validate     *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(orderService *services.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the order routes. Status updates are an admin
// operation; listing and retrieval are user-scoped inside the service.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	orderRoutes := router.Group("/orders", authRequired)
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Get("/:id", h.HandleGetOrder)
	orderRoutes.Patch("/:id/status", adminRequired, h.HandleUpdateOrderStatus)
}

// HandleGetOrders lists orders: all of them for admins, the requester's own
// otherwise.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetOrdersFor(middleware.CurrentUser(c))
	if err != nil {
		return err
	}
	return c.JSON(orders)
}

// OrderCreateRequest is the request body for placing an order.
type OrderCreateRequest struct {
	Items []models.OrderItemRequest `json:"items" validate:"required,dive"`
}

// HandleCreateOrder places a new order for the authenticated user.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	order, err := h.orderService.PlaceOrder(middleware.CurrentUser(c), req.Items)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(order)
}

// HandleGetOrder returns a single order. Customers may only read their own.
func (h *OrderHandler) HandleGetOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	order, err := h.orderService.GetOrderFor(middleware.CurrentUser(c), id)
	if err != nil {
		return err
	}
	return c.JSON(order)
}

// OrderStatusUpdateRequest is the request body for an order status change.
type OrderStatusUpdateRequest struct {
	Status models.OrderStatus `json:"status" validate:"required,oneof=created paid cancelled done"`
}

// HandleUpdateOrderStatus sets the status of an order.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req OrderStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	order, err := h.orderService.UpdateStatus(id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(order)
}
