package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/services"
)

// StockHandler handles HTTP requests for stock locations and product stock
// rows.
type StockHandler struct {
	stockService *services.StockService
	validate     *validator.Validate
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockService *services.StockService) *StockHandler {
	return &StockHandler{
		stockService: stockService,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the stock routes. Reads require authentication,
// writes require an administrator.
func (h *StockHandler) RegisterRoutes(router fiber.Router, authRequired, adminRequired fiber.Handler) {
	stockRoutes := router.Group("/stocks", authRequired)
	stockRoutes.Get("/", h.HandleGetLocations)
	stockRoutes.Post("/", adminRequired, h.HandleCreateLocation)
	stockRoutes.Delete("/:id", adminRequired, h.HandleDeleteLocation)

	stockRoutes.Get("/product-stock", h.HandleGetProductStock)
	stockRoutes.Post("/product-stock", adminRequired, h.HandleCreateProductStock)
	stockRoutes.Patch("/product-stock/:id", adminRequired, h.HandleUpdateProductStock)
	stockRoutes.Post("/product-stock/sync", adminRequired, h.HandleSyncProductStock)
}

// HandleGetLocations lists all stock locations.
func (h *StockHandler) HandleGetLocations(c *fiber.Ctx) error {
	stocks, err := h.stockService.GetAllLocations()
	if err != nil {
		return err
	}
	return c.JSON(stocks)
}

// StockCreateRequest is the request body for creating a stock location.
type StockCreateRequest struct {
	Location string `json:"location" validate:"required,max=255"`
}

// HandleCreateLocation creates a new stock location.
func (h *StockHandler) HandleCreateLocation(c *fiber.Ctx) error {
	var req StockCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	stock := models.Stock{Location: req.Location}
	if err := h.stockService.CreateLocation(&stock); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(stock)
}

// HandleDeleteLocation deletes a stock location and its product stock rows.
func (h *StockHandler) HandleDeleteLocation(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.stockService.DeleteLocation(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"detail": "stock location deleted"})
}

// HandleGetProductStock lists product stock rows across all locations.
func (h *StockHandler) HandleGetProductStock(c *fiber.Ctx) error {
	rows, err := h.stockService.GetAllProductStock()
	if err != nil {
		return err
	}
	return c.JSON(rows)
}

// ProductStockCreateRequest is the request body for creating a product stock
// row.
type ProductStockCreateRequest struct {
	ProductID uint    `json:"product_id" validate:"required"`
	StockID   uint    `json:"stock_id" validate:"required"`
	Qty       int     `json:"qty" validate:"gte=0"`
	SalePrice float64 `json:"sale_price" validate:"gte=0"`
}

// HandleCreateProductStock creates a new product stock row.
func (h *StockHandler) HandleCreateProductStock(c *fiber.Ctx) error {
	var req ProductStockCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	row := models.ProductStock{
		ProductID: req.ProductID,
		StockID:   req.StockID,
		Qty:       req.Qty,
		SalePrice: req.SalePrice,
	}
	if err := h.stockService.CreateProductStock(&row); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(row)
}

// ProductStockUpdateRequest is the request body for a partial product stock
// update.
type ProductStockUpdateRequest struct {
	Qty       *int     `json:"qty" validate:"omitempty,gte=0"`
	SalePrice *float64 `json:"sale_price" validate:"omitempty,gte=0"`
}

// HandleUpdateProductStock applies a partial update to a product stock row.
func (h *StockHandler) HandleUpdateProductStock(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req ProductStockUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	row, err := h.stockService.UpdateProductStock(id, req.Qty, req.SalePrice)
	if err != nil {
		return err
	}
	return c.JSON(row)
}

// SyncRequest is the request body for the external sync endpoint.
type SyncRequest struct {
	ProductStockIDs []uint `json:"product_stock_ids" validate:"required"`
}

// HandleSyncProductStock overwrites quantity and price for the given rows
// from the external dataset and returns the rows that were updated.
func (h *StockHandler) HandleSyncProductStock(c *fiber.Ctx) error {
	var req SyncRequest
	if err := c.BodyParser(&req); err != nil {
		return bodyError(err)
	}
	if err := h.validate.Struct(req); err != nil {
		return validationError(err)
	}

	updated, err := h.stockService.SyncProductStock(req.ProductStockIDs)
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
