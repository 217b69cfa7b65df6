package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// ExternalStockRecord mirrors one row of the external provider's feed.
type ExternalStockRecord struct {
	Qty       int
	SalePrice float64
}

// DefaultExternalStockData is the static stand-in for the external stock API,
// keyed by product stock row id.
var DefaultExternalStockData = map[uint]ExternalStockRecord{
	1: {Qty: 15, SalePrice: 19.99},
	2: {Qty: 3, SalePrice: 5.49},
}

// StockService handles stock locations, product stock rows, and the external
// synchronisation stub.
type StockService struct {
	stockRepo    repositories.StockRepository
	externalData map[uint]ExternalStockRecord
}

// NewStockService creates a new StockService. A nil dataset falls back to the
// default external mock data.
func NewStockService(stockRepo repositories.StockRepository, externalData map[uint]ExternalStockRecord) *StockService {
	if externalData == nil {
		externalData = DefaultExternalStockData
	}
	return &StockService{
		stockRepo:    stockRepo,
		externalData: externalData,
	}
}

// GetAllLocations retrieves all stock locations.
func (s *StockService) GetAllLocations() ([]models.Stock, error) {
	return s.stockRepo.GetAllLocations()
}

// CreateLocation creates a new stock location.
func (s *StockService) CreateLocation(stock *models.Stock) error {
	return s.stockRepo.CreateLocation(stock)
}

// DeleteLocation removes a stock location and its product stock rows.
func (s *StockService) DeleteLocation(id uint) error {
	return s.stockRepo.DeleteLocation(id)
}

// GetAllProductStock retrieves product stock rows across all locations.
func (s *StockService) GetAllProductStock() ([]models.ProductStock, error) {
	return s.stockRepo.GetAllProductStock()
}

// CreateProductStock creates a new product stock row.
func (s *StockService) CreateProductStock(ps *models.ProductStock) error {
	return s.stockRepo.CreateProductStock(ps)
}

// UpdateProductStock applies the provided fields to an existing product stock
// row and returns the updated record. Nil fields are left untouched.
func (s *StockService) UpdateProductStock(id uint, qty *int, salePrice *float64) (*models.ProductStock, error) {
	row, err := s.stockRepo.GetProductStockByID(id)
	if err != nil {
		return nil, err
	}
	if qty != nil {
		row.Qty = *qty
	}
	if salePrice != nil {
		row.SalePrice = *salePrice
	}
	if err := s.stockRepo.UpdateProductStock(row); err != nil {
		return nil, err
	}
	return row, nil
}

// SyncProductStock overwrites quantity and price for the given rows from the
// external dataset. Ids without an external entry or without a matching
// database row are silently skipped; all matched rows commit in one batch.
func (s *StockService) SyncProductStock(ids []uint) ([]models.ProductStock, error) {
	updated := make([]models.ProductStock, 0, len(ids))
	for _, id := range ids {
		record, ok := s.externalData[id]
		if !ok {
			continue
		}
		row, err := s.stockRepo.GetProductStockByID(id)
		if err != nil {
			continue
		}
		row.Qty = record.Qty
		row.SalePrice = record.SalePrice
		updated = append(updated, *row)
	}
	if err := s.stockRepo.BatchUpdateProductStock(updated); err != nil {
		return nil, err
	}
	return updated, nil
}
