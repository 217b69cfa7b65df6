package models

import "time"

// Product is a sellable item. It always belongs to a category; per-location
// quantities and prices live in ProductStock rows.
type Product struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Barcode     string    `json:"barcode" gorm:"uniqueIndex;size:64;not null"`
	Description string    `json:"description" gorm:"type:text"`
	CategoryID  uint      `json:"category_id" gorm:"not null"`
	Category    Category  `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
