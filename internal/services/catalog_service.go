package services

import (
	"pasar/internal/models"
	"pasar/internal/repositories"
)

// CatalogService handles business logic for categories and products.
type CatalogService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CatalogService) GetAllCategories() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// GetCategoryByID retrieves a single category.
func (s *CatalogService) GetCategoryByID(id uint) (*models.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// CreateCategory creates a new category.
func (s *CatalogService) CreateCategory(category *models.Category) error {
	return s.categoryRepo.Create(category)
}

// UpdateCategory applies the provided fields to an existing category and
// returns the updated record. Nil fields are left untouched.
func (s *CatalogService) UpdateCategory(id uint, name, description *string) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if name != nil {
		category.Name = *name
	}
	if description != nil {
		category.Description = *description
	}
	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory deletes a category by id.
func (s *CatalogService) DeleteCategory(id uint) error {
	return s.categoryRepo.Delete(id)
}

// GetAllProducts retrieves all products.
func (s *CatalogService) GetAllProducts() ([]models.Product, error) {
	return s.productRepo.GetAll()
}

// GetProductByID retrieves a single product.
func (s *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	return s.productRepo.GetByID(id)
}

// CreateProduct creates a new product.
func (s *CatalogService) CreateProduct(product *models.Product) error {
	return s.productRepo.Create(product)
}

// ProductUpdate carries the optional fields of a product update. Nil fields
// are left untouched.
type ProductUpdate struct {
	Name        *string
	Barcode     *string
	Description *string
	CategoryID  *uint
}

// UpdateProduct applies the update to an existing product and returns the
// updated record.
func (s *CatalogService) UpdateProduct(id uint, update ProductUpdate) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Barcode != nil {
		product.Barcode = *update.Barcode
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.CategoryID != nil {
		product.CategoryID = *update.CategoryID
	}
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by id.
func (s *CatalogService) DeleteProduct(id uint) error {
	return s.productRepo.Delete(id)
}
