package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/services"
)

// MockStockRepository is a mock implementation of repositories.StockRepository.
type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) GetAllLocations() ([]models.Stock, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Stock), args.Error(1)
}

func (m *MockStockRepository) CreateLocation(stock *models.Stock) error {
	args := m.Called(stock)
	return args.Error(0)
}

func (m *MockStockRepository) DeleteLocation(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStockRepository) GetAllProductStock() ([]models.ProductStock, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ProductStock), args.Error(1)
}

func (m *MockStockRepository) GetProductStockByID(id uint) (*models.ProductStock, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductStock), args.Error(1)
}

func (m *MockStockRepository) CreateProductStock(ps *models.ProductStock) error {
	args := m.Called(ps)
	return args.Error(0)
}

func (m *MockStockRepository) UpdateProductStock(ps *models.ProductStock) error {
	args := m.Called(ps)
	return args.Error(0)
}

func (m *MockStockRepository) BatchUpdateProductStock(rows []models.ProductStock) error {
	args := m.Called(rows)
	return args.Error(0)
}

func TestStockService_SyncProductStock(t *testing.T) {
	mockRepo := new(MockStockRepository)
	external := map[uint]services.ExternalStockRecord{
		1: {Qty: 15, SalePrice: 19.99},
		2: {Qty: 3, SalePrice: 5.49},
	}
	stockService := services.NewStockService(mockRepo, external)

	mockRepo.On("GetProductStockByID", uint(1)).
		Return(&models.ProductStock{ID: 1, ProductID: 1, StockID: 1, Qty: 2, SalePrice: 9.99}, nil).Once()
	// Row 2 has an external entry but no database row: skipped, not an error.
	mockRepo.On("GetProductStockByID", uint(2)).
		Return(nil, apperrors.New(apperrors.KindNotFound, "product stock with ID 2 not found")).Once()
	mockRepo.On("BatchUpdateProductStock", mock.AnythingOfType("[]models.ProductStock")).Return(nil).Once()

	// Id 99 has no external entry: skipped before any lookup.
	updated, err := stockService.SyncProductStock([]uint{1, 2, 99})
	assert.NoError(t, err)
	assert.Len(t, updated, 1)
	assert.Equal(t, uint(1), updated[0].ID)
	assert.Equal(t, 15, updated[0].Qty)
	assert.Equal(t, 19.99, updated[0].SalePrice)
	mockRepo.AssertExpectations(t)
	mockRepo.AssertNotCalled(t, "GetProductStockByID", uint(99))
}

func TestStockService_SyncProductStock_NoMatches(t *testing.T) {
	mockRepo := new(MockStockRepository)
	stockService := services.NewStockService(mockRepo, map[uint]services.ExternalStockRecord{})

	mockRepo.On("BatchUpdateProductStock", mock.AnythingOfType("[]models.ProductStock")).Return(nil).Once()

	updated, err := stockService.SyncProductStock([]uint{7, 8})
	assert.NoError(t, err)
	assert.Empty(t, updated)
}

func TestStockService_UpdateProductStock(t *testing.T) {
	mockRepo := new(MockStockRepository)
	stockService := services.NewStockService(mockRepo, nil)

	row := &models.ProductStock{ID: 1, ProductID: 1, StockID: 1, Qty: 5, SalePrice: 10}
	mockRepo.On("GetProductStockByID", uint(1)).Return(row, nil).Once()
	mockRepo.On("UpdateProductStock", row).Return(nil).Once()

	qty := 8
	updated, err := stockService.UpdateProductStock(1, &qty, nil)
	assert.NoError(t, err)
	assert.Equal(t, 8, updated.Qty)
	// A nil price leaves the stored price untouched.
	assert.Equal(t, 10.0, updated.SalePrice)
	mockRepo.AssertExpectations(t)
}
