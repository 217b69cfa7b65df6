package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/services"
)

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the category routes. Reads require
// authentication, writes require an administrator.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	categoryRoutes := router.Group("/categories", authRequired)
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategory)
	categoryRoutes.Post("/", adminRequired, h.HandleCreateCategory)
	categoryRoutes.Patch("/:id", adminRequired, h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", adminRequired, h.HandleDeleteCategory)
}

// HandleGetCategories lists all categories.
func (h *CategoryHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.GetAllCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// HandleGetCategory returns a single category.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	category, err := h.catalogService.GetCategoryByID(id)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// CategoryCreateRequest is the request body for creating a category.
type CategoryCreateRequest struct {
	Name        string `json:"name" validate:"required,max=128"`
	Description string `json:"description" validate:"omitempty,max=512"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := h.catalogService.CreateCategory(&category); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// CategoryUpdateRequest is the request body for a partial category update.
type CategoryUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=128"`
	Description *string `json:"description" validate:"omitempty,max=512"`
}

// HandleUpdateCategory applies a partial update to a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	category, err := h.catalogService.UpdateCategory(id, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteCategory(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"detail": "category deleted"})
}
