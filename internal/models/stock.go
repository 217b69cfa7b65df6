package models

// Stock is a warehouse or pickup location.
type Stock struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Location string `json:"location" gorm:"uniqueIndex;size:255;not null"`
}

// ProductStock is the per-location quantity and price record for one product.
// A (product, stock) pair has at most one row.
type ProductStock struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	ProductID uint    `json:"product_id" gorm:"not null;uniqueIndex:idx_product_location"`
	Product   Product `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	StockID   uint    `json:"stock_id" gorm:"not null;uniqueIndex:idx_product_location"`
	Stock     Stock   `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Qty       int     `json:"qty" gorm:"not null;default:0"`
	SalePrice float64 `json:"sale_price" gorm:"not null;default:0"`
}
