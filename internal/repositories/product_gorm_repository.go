package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{db: db}
}

// GetAll retrieves all products.
func (r *GORMProductRepository) GetAll() ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products).Error; err != nil {
		return nil, apperrors.FromDB(err, "product not found")
	}
	return products, nil
}

// GetByID retrieves a single product by id.
func (r *GORMProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("product with ID %d not found", id))
	}
	return &product, nil
}

// Create stores a new product. A missing category surfaces as a foreign-key
// violation translated to a BadRequest error.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit(clause.Associations).Create(product).Error; err != nil {
		return apperrors.FromDB(err, "product not found")
	}
	return nil
}

// Update persists all fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Omit(clause.Associations).Save(product)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "product not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("product with ID %d not found", product.ID))
	}
	return nil
}

// Delete removes a product by id.
func (r *GORMProductRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "product not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("product with ID %d not found", id))
	}
	return nil
}
