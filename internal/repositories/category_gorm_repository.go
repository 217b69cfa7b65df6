package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories.
func (r *GORMCategoryRepository) GetAll() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories).Error; err != nil {
		return nil, apperrors.FromDB(err, "category not found")
	}
	return categories, nil
}

// GetByID retrieves a single category by id.
func (r *GORMCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("category with ID %d not found", id))
	}
	return &category, nil
}

// Create stores a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		return apperrors.FromDB(err, "category not found")
	}
	return nil
}

// Update persists all fields of an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Save(category)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "category not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("category with ID %d not found", category.ID))
	}
	return nil
}

// Delete removes a category by id.
func (r *GORMCategoryRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Category{}, "id = ?", id)
	if res.Error != nil {
		return apperrors.FromDB(res.Error, "category not found")
	}
	if res.RowsAffected == 0 {
		return apperrors.New(apperrors.KindNotFound, fmt.Sprintf("category with ID %d not found", id))
	}
	return nil
}
