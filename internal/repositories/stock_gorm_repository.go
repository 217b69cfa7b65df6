package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMStockRepository is a GORM implementation of StockRepository.
type GORMStockRepository struct {
	db *gorm.DB
}

// NewGORMStockRepository creates a new instance of GORMStockRepository.
func NewGORMStockRepository(db *gorm.DB) *GORMStockRepository {
	return &GORMStockRepository{db: db}
}

// GetAllLocations retrieves all stock locations.
func (r *GORMStockRepository) GetAllLocations() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Find(&stocks).Error; err != nil {
		return nil, apperrors.FromDB(err, "stock location not found")
	}
	return stocks, nil
}

// CreateLocation stores a new stock location.
func (r *GORMStockRepository) CreateLocation(stock *models.Stock) error {
	if err := r.db.Create(stock).Error; err != nil {
		return apperrors.FromDB(err, "stock location not found")
	}
	return nil
}

// DeleteLocation removes a stock location together with its product stock
// rows in a single transaction.
func (r *GORMStockRepository) DeleteLocation(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.ProductStock{}, "stock_id = ?", id).Error; err != nil {
			return apperrors.FromDB(err, "stock location not found")
		}
		res := tx.Delete(&models.Stock{}, "id = ?", id)
		if res.Error != nil {
			return apperrors.FromDB(res.Error, "stock location not found")
		}
		if res.RowsAffected == 0 {
			return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("stock location with ID %d not found", id))
		}
		return nil
	})
}

// GetAllProductStock retrieves product stock rows across all locations.
func (r *GORMStockRepository) GetAllProductStock() ([]models.ProductStock, error) {
	var rows []models.ProductStock
	if err := r.db.Find(&rows).Error; err != nil {
		return nil, apperrors.FromDB(err, "product stock not found")
	}
	return rows, nil
}

// GetProductStockByID retrieves a single product stock row by id.
func (r *GORMStockRepository) GetProductStockByID(id uint) (*models.ProductStock, error) {
	var row models.ProductStock
	if err := r.db.First(&row, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("product stock with ID %d not found", id))
	}
	return &row, nil
}

// CreateProductStock stores a new product stock row. A duplicate
// (product, stock) pair surfaces as a Conflict error, an unknown reference as
// a BadRequest error.
func (r *GORMStockRepository) CreateProductStock(ps *models.ProductStock) error {
	if err := r.db.Omit(clause.Associations).Create(ps).Error; err != nil {
		return apperrors.FromDB(err, "product stock not found")
	}
	return nil
}

// UpdateProductStock persists all fields of an existing product stock row.
func (r *GORMStockRepository) UpdateProductStock(ps *models.ProductStock) error {
	res := r.db.Omit(clause.Associations).Save(ps)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "product stock not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("product stock with ID %d not found", ps.ID))
	}
	return nil
}

// BatchUpdateProductStock persists a set of product stock rows in one
// transaction, so a sync batch commits all-or-nothing.
func (r *GORMStockRepository) BatchUpdateProductStock(rows []models.ProductStock) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Omit(clause.Associations).Save(&rows[i]).Error; err != nil {
				return apperrors.FromDB(err, "product stock not found")
			}
		}
		return nil
	})
}
