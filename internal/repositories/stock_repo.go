package repositories

import "pasar/internal/models"

// StockRepository defines the interface for stock locations and per-location
// product stock rows.
type StockRepository interface {
	GetAllLocations() ([]models.Stock, error)
	CreateLocation(stock *models.Stock) error
	DeleteLocation(id uint) error

	GetAllProductStock() ([]models.ProductStock, error)
	GetProductStockByID(id uint) (*models.ProductStock, error)
	CreateProductStock(ps *models.ProductStock) error
	UpdateProductStock(ps *models.ProductStock) error
	BatchUpdateProductStock(rows []models.ProductStock) error
}
