package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pasar/internal/apperrors"
	"pasar/internal/models"
	"pasar/internal/repositories"
)

func TestGORMStockRepository_DeleteLocation(t *testing.T) {
	db := setupDB(t)
	_, rows := seedCatalog(t, db)
	repo := repositories.NewGORMStockRepository(db)

	require.NoError(t, repo.DeleteLocation(rows[0].StockID))

	// The location and all of its product stock rows are gone; products stay.
	var stockCount, rowCount, productCount int64
	require.NoError(t, db.Model(&models.Stock{}).Count(&stockCount).Error)
	require.NoError(t, db.Model(&models.ProductStock{}).Count(&rowCount).Error)
	require.NoError(t, db.Model(&models.Product{}).Count(&productCount).Error)
	assert.Zero(t, stockCount)
	assert.Zero(t, rowCount)
	assert.Equal(t, int64(2), productCount)

	err := repo.DeleteLocation(9999)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestGORMStockRepository_CreateProductStock_Duplicate(t *testing.T) {
	db := setupDB(t)
	_, rows := seedCatalog(t, db)
	repo := repositories.NewGORMStockRepository(db)

	dup := models.ProductStock{ProductID: rows[0].ProductID, StockID: rows[0].StockID, Qty: 1}
	err := repo.CreateProductStock(&dup)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestGORMStockRepository_CreateLocation_Duplicate(t *testing.T) {
	db := setupDB(t)
	seedCatalog(t, db)
	repo := repositories.NewGORMStockRepository(db)

	err := repo.CreateLocation(&models.Stock{Location: "central warehouse"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestGORMStockRepository_BatchUpdateProductStock(t *testing.T) {
	db := setupDB(t)
	_, rows := seedCatalog(t, db)
	repo := repositories.NewGORMStockRepository(db)

	rows[0].Qty = 15
	rows[0].SalePrice = 19.99
	rows[1].Qty = 3
	rows[1].SalePrice = 5.49
	require.NoError(t, repo.BatchUpdateProductStock(rows))

	stored, err := repo.GetAllProductStock()
	require.NoError(t, err)
	require.Len(t, stored, 2)
	assert.Equal(t, 15, stored[0].Qty)
	assert.Equal(t, 3, stored[1].Qty)

	// An empty batch is a no-op.
	require.NoError(t, repo.BatchUpdateProductStock(nil))
}

func TestGORMProductRepository_DuplicateBarcode(t *testing.T) {
	db := setupDB(t)
	seedCatalog(t, db)
	repo := repositories.NewGORMProductRepository(db)

	var category models.Category
	require.NoError(t, db.First(&category).Error)

	err := repo.Create(&models.Product{Name: "Clone", Barcode: "8991002100015", CategoryID: category.ID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
}

func TestGORMProductRepository_UnknownCategory(t *testing.T) {
	db := setupDB(t)
	seedCatalog(t, db)
	repo := repositories.NewGORMProductRepository(db)

	err := repo.Create(&models.Product{Name: "Orphan", Barcode: "8991002100039", CategoryID: 9999})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err))
}
