package repositories

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"pasar/internal/apperrors"
	"pasar/internal/models"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{db: db}
}

// GetAll retrieves every order with its line items.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders).Error; err != nil {
		return nil, apperrors.FromDB(err, "order not found")
	}
	return orders, nil
}

// GetAllByUser retrieves the orders belonging to one user.
func (r *GORMOrderRepository) GetAllByUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders, "user_id = ?", userID).Error; err != nil {
		return nil, apperrors.FromDB(err, "order not found")
	}
	return orders, nil
}

// GetByID retrieves a single order with its line items.
func (r *GORMOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := r.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return nil, apperrors.FromDB(err, fmt.Sprintf("order with ID %d not found", id))
	}
	return &order, nil
}

// Create places an order for the user in one transaction. Items are handled
// in request order: the stock row is looked up, the quantity is decremented
// with a conditional update that only applies while enough stock remains, and
// a line item snapshots the row's current sale price. The first failing item
// rolls back the whole order, and the conditional update keeps concurrent
// orders on the same row from driving the quantity negative.
func (r *GORMOrderRepository) Create(userID uint, items []models.OrderItemRequest) (*models.Order, error) {
	var order models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{UserID: userID, Status: models.OrderStatusCreated}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return apperrors.FromDB(err, "order not found")
		}

		for _, item := range items {
			var row models.ProductStock
			if err := tx.First(&row, "id = ?", item.ProductStockID).Error; err != nil {
				return apperrors.FromDB(err, fmt.Sprintf("product stock with ID %d not found", item.ProductStockID))
			}

			res := tx.Model(&models.ProductStock{}).
				Where("id = ? AND qty >= ?", row.ID, item.Quantity).
				UpdateColumn("qty", gorm.Expr("qty - ?", item.Quantity))
			if res.Error != nil {
				return apperrors.FromDB(res.Error, "product stock not found")
			}
			if res.RowsAffected == 0 {
				return apperrors.New(apperrors.KindBadRequest,
					fmt.Sprintf("insufficient stock for product stock %d", row.ID))
			}

			orderItem := models.OrderItem{
				OrderID:      order.ID,
				ProductID:    row.ProductID,
				Quantity:     item.Quantity,
				PriceAtOrder: row.SalePrice,
			}
			if err := tx.Omit(clause.Associations).Create(&orderItem).Error; err != nil {
				return apperrors.FromDB(err, "order not found")
			}
			order.Items = append(order.Items, orderItem)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus sets the status of an existing order and returns it.
func (r *GORMOrderRepository) UpdateStatus(id uint, status models.OrderStatus) (*models.Order, error) {
	res := r.db.Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, apperrors.FromDB(res.Error, "order not found")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.New(apperrors.KindNotFound, fmt.Sprintf("order with ID %d not found", id))
	}
	return r.GetByID(id)
}
