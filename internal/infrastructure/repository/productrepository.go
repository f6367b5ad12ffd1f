package repository

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/persistence/models"
	"simvia/internal/shared/logger"
)

type ProductRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewProductRepository(db *gorm.DB, logger logger.Interface) catalog.ProductRepository {
	return &ProductRepositoryImpl{db: db, logger: logger}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *catalog.Product) error {
	model := &models.ProductModel{
		Title:             product.Title(),
		Slug:              product.Slug(),
		Provider:          product.Provider(),
		ESIMType:          product.ESIMType().String(),
		Coverage:          product.Coverage(),
		IconURL:           product.IconURL(),
		EnableVariants:    product.VariantsEnabled(),
		PriceInUSDEnabled: product.BasePriceEnabled(),
		PriceInUSD:        product.BasePriceUSD(),
		Inventory:         product.Inventory(),
		Status:            string(product.Status()),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		if err := replaceProductCountries(tx, model.ID, product.CountryIDs()); err != nil {
			return err
		}
		return replaceProductVariantTypes(tx, model.ID, product.VariantTypeIDs())
	})
	if err != nil {
		r.logger.Errorw("failed to create product", "error", err, "slug", product.Slug())
		return fmt.Errorf("failed to create product: %w", err)
	}

	if err := product.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("product created", "product_id", model.ID, "slug", product.Slug())
	return nil
}

func (r *ProductRepositoryImpl) GetBySlug(ctx context.Context, slug string) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Countries").
		Preload("VariantTypes").
		Where("slug = ?", slug).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by slug", "error", err, "slug", slug)
		return nil, fmt.Errorf("failed to get product by slug: %w", err)
	}
	return productToEntity(&model)
}

func (r *ProductRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Product, error) {
	var model models.ProductModel
	err := r.db.WithContext(ctx).
		Preload("Countries").
		Preload("VariantTypes").
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get product by ID", "error", err, "product_id", id)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return productToEntity(&model)
}

// UpdateSourceFields persists only the source-owned field set, leaving
// pricing, inventory, variant wiring, and status columns untouched.
func (r *ProductRepositoryImpl) UpdateSourceFields(ctx context.Context, product *catalog.Product) error {
	if product.ID() == 0 {
		return fmt.Errorf("product ID is required for update")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.ProductModel{}).
			Where("id = ?", product.ID()).
			Updates(map[string]interface{}{
				"provider":   product.Provider(),
				"esim_type":  product.ESIMType().String(),
				"coverage":   product.Coverage(),
				"icon_url":   product.IconURL(),
				"updated_at": product.UpdatedAt(),
			})
		if result.Error != nil {
			return result.Error
		}
		return replaceProductCountries(tx, product.ID(), product.CountryIDs())
	})
	if err != nil {
		r.logger.Errorw("failed to update product source fields", "error", err, "product_id", product.ID())
		return fmt.Errorf("failed to update product: %w", err)
	}

	r.logger.Infow("product source fields updated", "product_id", product.ID(), "slug", product.Slug())
	return nil
}

func (r *ProductRepositoryImpl) List(ctx context.Context, filter catalog.ProductFilter) ([]*catalog.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ProductModel{})

	if filter.PublishedOnly {
		query = query.Where("status = ?", string(catalog.ProductStatusPublished))
	}
	if filter.ESIMType != nil {
		query = query.Where("esim_type = ?", filter.ESIMType.String())
	}
	if filter.CountryID != nil {
		query = query.Where("id IN (?)",
			r.db.Model(&models.ProductCountryModel{}).
				Select("product_id").
				Where("country_id = ?", *filter.CountryID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count products", "error", err)
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var productModels []*models.ProductModel
	if err := query.Preload("Countries").Preload("VariantTypes").Order("title asc").Find(&productModels).Error; err != nil {
		r.logger.Errorw("failed to list products", "error", err)
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}

	products := make([]*catalog.Product, 0, len(productModels))
	for _, model := range productModels {
		product, err := productToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		products = append(products, product)
	}
	return products, total, nil
}

func replaceProductCountries(tx *gorm.DB, productID uint, countryIDs []uint) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductCountryModel{}).Error; err != nil {
		return err
	}
	if len(countryIDs) == 0 {
		return nil
	}
	rows := make([]models.ProductCountryModel, 0, len(countryIDs))
	for i, countryID := range countryIDs {
		rows = append(rows, models.ProductCountryModel{
			ProductID: productID,
			CountryID: countryID,
			Position:  i,
		})
	}
	return tx.Create(&rows).Error
}

func replaceProductVariantTypes(tx *gorm.DB, productID uint, variantTypeIDs []uint) error {
	if err := tx.Where("product_id = ?", productID).Delete(&models.ProductVariantTypeModel{}).Error; err != nil {
		return err
	}
	if len(variantTypeIDs) == 0 {
		return nil
	}
	rows := make([]models.ProductVariantTypeModel, 0, len(variantTypeIDs))
	for i, typeID := range variantTypeIDs {
		rows = append(rows, models.ProductVariantTypeModel{
			ProductID:     productID,
			VariantTypeID: typeID,
			Position:      i,
		})
	}
	return tx.Create(&rows).Error
}

func productToEntity(model *models.ProductModel) (*catalog.Product, error) {
	sort.Slice(model.Countries, func(i, j int) bool {
		return model.Countries[i].Position < model.Countries[j].Position
	})
	countryIDs := make([]uint, 0, len(model.Countries))
	for _, row := range model.Countries {
		countryIDs = append(countryIDs, row.CountryID)
	}

	sort.Slice(model.VariantTypes, func(i, j int) bool {
		return model.VariantTypes[i].Position < model.VariantTypes[j].Position
	})
	variantTypeIDs := make([]uint, 0, len(model.VariantTypes))
	for _, row := range model.VariantTypes {
		variantTypeIDs = append(variantTypeIDs, row.VariantTypeID)
	}

	product, err := catalog.ReconstructProduct(model.ID, model.Title, model.Slug,
		model.Provider, catalog.ESIMType(model.ESIMType), model.Coverage, model.IconURL,
		model.EnableVariants, variantTypeIDs, model.PriceInUSDEnabled, model.PriceInUSD,
		model.Inventory, countryIDs, catalog.ProductStatus(model.Status),
		model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct product: %w", err)
	}
	return product, nil
}
