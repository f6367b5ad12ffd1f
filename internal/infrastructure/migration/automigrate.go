package migration

import (
	"simvia/internal/infrastructure/persistence/models"
)

// AutoMigrateModels lists every persistence model in dependency order, for
// environments that use gorm AutoMigrate instead of SQL scripts.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.CountryModel{},
		&models.VariantTypeModel{},
		&models.VariantOptionModel{},
		&models.ProductModel{},
		&models.ProductCountryModel{},
		&models.ProductVariantTypeModel{},
		&models.VariantModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
	}
}
