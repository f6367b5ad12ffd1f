package models

import "time"

// ProductModel is the persistence model for eSIM products. The anti-
// corruption layer between the catalog domain and the database.
type ProductModel struct {
	ID                uint   `gorm:"primarykey"`
	Title             string `gorm:"not null;size:200"`
	Slug              string `gorm:"uniqueIndex;not null;size:220"`
	Provider          string `gorm:"size:100"`
	ESIMType          string `gorm:"column:esim_type;not null;size:20;default:global"`
	Coverage          string `gorm:"type:text"`
	IconURL           string `gorm:"size:500"`
	EnableVariants    bool   `gorm:"not null;default:false"`
	PriceInUSDEnabled bool   `gorm:"column:price_in_usd_enabled;not null;default:true"`
	PriceInUSD        float64 `gorm:"column:price_in_usd;type:decimal(10,2);not null;default:0"`
	Inventory         int    `gorm:"not null;default:0"`
	Status            string `gorm:"not null;size:20;default:draft"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Countries    []ProductCountryModel     `gorm:"foreignKey:ProductID"`
	VariantTypes []ProductVariantTypeModel `gorm:"foreignKey:ProductID"`
}

func (ProductModel) TableName() string {
	return "products"
}

// ProductCountryModel is an explicit, ordered join row between a product and
// a country. The source feed may list the same country twice for one
// destination; those duplicates are preserved, so this is not a plain
// many2many with a composite key.
type ProductCountryModel struct {
	ID        uint `gorm:"primarykey"`
	ProductID uint `gorm:"index;not null"`
	CountryID uint `gorm:"index;not null"`
	Position  int  `gorm:"not null;default:0"`
}

func (ProductCountryModel) TableName() string {
	return "product_countries"
}

// ProductVariantTypeModel links a product to the variant type axes it sells
// under, in order.
type ProductVariantTypeModel struct {
	ID            uint `gorm:"primarykey"`
	ProductID     uint `gorm:"index;not null"`
	VariantTypeID uint `gorm:"index;not null"`
	Position      int  `gorm:"not null;default:0"`
}

func (ProductVariantTypeModel) TableName() string {
	return "product_variant_types"
}
