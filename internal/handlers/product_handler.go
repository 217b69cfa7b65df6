package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the product routes. Reads require authentication,
// writes require an administrator.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	productRoutes := router.Group("/products", authRequired)
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", adminRequired, h.HandleCreateProduct)
	productRoutes.Patch("/:id", adminRequired, h.HandleUpdateProduct)
	productRoutes.Delete("/:id", adminRequired, h.HandleDeleteProduct)
}

// HandleGetProducts lists all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.catalogService.GetAllProducts()
	if err != nil {
		return err
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	product, err := h.catalogService.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// ProductCreateRequest is the request body for creating a product.
type ProductCreateRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Barcode     string `json:"barcode" validate:"required,max=64"`
	Description string `json:"description" validate:"omitempty"`
	CategoryID  uint   `json:"category_id" validate:"required"`
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req ProductCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	product := models.Product{
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	}
	if err := h.catalogService.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// ProductUpdateRequest is the request body for a partial product update.
type ProductUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Barcode     *string `json:"barcode" validate:"omitempty,max=64"`
	Description *string `json:"description"`
	CategoryID  *uint   `json:"category_id"`
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ProductUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	product, err := h.catalogService.UpdateProduct(id, services.ProductUpdate{
		Name:        req.Name,
		Barcode:     req.Barcode,
		Description: req.Description,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.catalogService.DeleteProduct(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"detail": "product deleted"})
}
