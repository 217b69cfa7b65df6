package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/services"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes. Listing users and changing roles
// are admin operations.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	userRoutes := router.Group("/users", authRequired)
	userRoutes.Get("/me", h.HandleGetMe)
	userRoutes.Get("/", adminRequired, h.HandleGetUsers)
	userRoutes.Patch("/:id/role", adminRequired, h.HandleUpdateRole)
}

// HandleGetMe returns the authenticated user's profile.
func (h *UserHandler) HandleGetMe(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// HandleGetUsers returns every user.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAllUsers()
	if err != nil {
		return err
	}
	return c.JSON(users)
}

// RoleUpdateRequest is the request body for a role change.
type RoleUpdateRequest struct {
	Role models.UserRole `json:"role" validate:"required,oneof=admin customer"`
}

// HandleUpdateRole changes the role of the given user.
func (h *UserHandler) HandleUpdateRole(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req RoleUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	if err := h.userService.UpdateUserRole(id, req.Role); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"detail": "user role updated"})
}
