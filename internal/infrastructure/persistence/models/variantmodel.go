package models

import "time"

type VariantTypeModel struct {
	ID    uint   `gorm:"primarykey"`
	Name  string `gorm:"uniqueIndex;not null;size:50"`
	Label string `gorm:"not null;size:100"`
}

func (VariantTypeModel) TableName() string {
	return "variant_types"
}

// VariantOptionModel stores one distinct value on a variant type's axis.
// The (variant_type_id, value) pair is the dedup key shared catalog-wide.
type VariantOptionModel struct {
	ID            uint   `gorm:"primarykey"`
	VariantTypeID uint   `gorm:"uniqueIndex:idx_variant_options_type_value;not null"`
	Label         string `gorm:"not null;size:100"`
	Value         string `gorm:"uniqueIndex:idx_variant_options_type_value;not null;size:100"`
}

func (VariantOptionModel) TableName() string {
	return "variant_options"
}

type VariantModel struct {
	ID         uint    `gorm:"primarykey"`
	ProductID  uint    `gorm:"index;not null"`
	OptionID   uint    `gorm:"index;not null"`
	Title      string  `gorm:"not null;size:300"`
	PriceInUSD float64 `gorm:"column:price_in_usd;type:decimal(10,2);not null;default:0"`
	Inventory  int     `gorm:"not null;default:0"`
	PlanType   string  `gorm:"not null;size:20;default:limited"`
	Status     string  `gorm:"not null;size:20;default:published"`
	CreatedAt  time.Time
}

func (VariantModel) TableName() string {
	return "variants"
}
