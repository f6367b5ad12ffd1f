package models

import (
	"time"

	"gorm.io/datatypes"
)

type OrderModel struct {
	ID                  uint    `gorm:"primarykey"`
	Number              string  `gorm:"uniqueIndex;not null;size:30"`
	CustomerEmail       string  `gorm:"index;not null;size:255"`
	Amount              float64 `gorm:"type:decimal(10,2);not null"`
	Currency            string  `gorm:"not null;size:3;default:USD"`
	Status              string  `gorm:"index;not null;size:20;default:processing"`
	CreatedFromCheckout bool    `gorm:"not null;default:false"`
	CreatedAt           time.Time
	UpdatedAt           time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

func (OrderModel) TableName() string {
	return "orders"
}

type OrderItemModel struct {
	ID        uint    `gorm:"primarykey"`
	OrderID   uint    `gorm:"index;not null"`
	ProductID uint    `gorm:"not null"`
	VariantID *uint
	Quantity  int     `gorm:"not null;default:1"`
	UnitPrice float64 `gorm:"type:decimal(10,2);not null"`
	// Fabricated eSIM activation sets, one element per quantity unit.
	Activations datatypes.JSON
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
