package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"simvia/internal/domain/catalog"
	"simvia/internal/infrastructure/persistence/models"
	"simvia/internal/shared/logger"
)

type VariantRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewVariantRepository(db *gorm.DB, logger logger.Interface) catalog.VariantRepository {
	return &VariantRepositoryImpl{db: db, logger: logger}
}

func (r *VariantRepositoryImpl) GetTypeByName(ctx context.Context, name string) (*catalog.VariantType, error) {
	var model models.VariantTypeModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get variant type by name", "error", err, "name", name)
		return nil, fmt.Errorf("failed to get variant type: %w", err)
	}
	return catalog.ReconstructVariantType(model.ID, model.Name, model.Label)
}

func (r *VariantRepositoryImpl) CreateType(ctx context.Context, variantType *catalog.VariantType) error {
	model := &models.VariantTypeModel{
		Name:  variantType.Name(),
		Label: variantType.Label(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create variant type", "error", err, "name", variantType.Name())
		return fmt.Errorf("failed to create variant type: %w", err)
	}

	if err := variantType.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("variant type created", "variant_type_id", model.ID, "name", variantType.Name())
	return nil
}

func (r *VariantRepositoryImpl) GetOptionByValue(ctx context.Context, variantTypeID uint, value string) (*catalog.VariantOption, error) {
	var model models.VariantOptionModel
	err := r.db.WithContext(ctx).
		Where("variant_type_id = ? AND value = ?", variantTypeID, value).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get variant option", "error", err, "value", value)
		return nil, fmt.Errorf("failed to get variant option: %w", err)
	}
	return catalog.ReconstructVariantOption(model.ID, model.VariantTypeID, model.Label, model.Value)
}

func (r *VariantRepositoryImpl) CreateOption(ctx context.Context, option *catalog.VariantOption) error {
	model := &models.VariantOptionModel{
		VariantTypeID: option.VariantTypeID(),
		Label:         option.Label(),
		Value:         option.Value(),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create variant option", "error", err, "value", option.Value())
		return fmt.Errorf("failed to create variant option: %w", err)
	}

	if err := option.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("variant option created", "option_id", model.ID, "value", option.Value())
	return nil
}

func (r *VariantRepositoryImpl) GetOptionsByIDs(ctx context.Context, ids []uint) ([]*catalog.VariantOption, error) {
	if len(ids) == 0 {
		return []*catalog.VariantOption{}, nil
	}

	var optionModels []*models.VariantOptionModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&optionModels).Error; err != nil {
		r.logger.Errorw("failed to get variant options by IDs", "error", err, "ids", ids)
		return nil, fmt.Errorf("failed to get variant options: %w", err)
	}

	options := make([]*catalog.VariantOption, 0, len(optionModels))
	for _, model := range optionModels {
		option, err := catalog.ReconstructVariantOption(model.ID, model.VariantTypeID, model.Label, model.Value)
		if err != nil {
			return nil, err
		}
		options = append(options, option)
	}
	return options, nil
}

func (r *VariantRepositoryImpl) CreateVariant(ctx context.Context, variant *catalog.Variant) error {
	model := &models.VariantModel{
		ProductID:  variant.ProductID(),
		OptionID:   variant.OptionID(),
		Title:      variant.Title(),
		PriceInUSD: variant.PriceUSD(),
		Inventory:  variant.Inventory(),
		PlanType:   string(variant.PlanType()),
		Status:     string(variant.Status()),
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create variant", "error", err, "product_id", variant.ProductID())
		return fmt.Errorf("failed to create variant: %w", err)
	}

	if err := variant.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("variant created", "variant_id", model.ID, "product_id", variant.ProductID())
	return nil
}

func (r *VariantRepositoryImpl) ListByProduct(ctx context.Context, productID uint) ([]*catalog.Variant, error) {
	var variantModels []*models.VariantModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id asc").
		Find(&variantModels).Error
	if err != nil {
		r.logger.Errorw("failed to list variants", "error", err, "product_id", productID)
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}

	variants := make([]*catalog.Variant, 0, len(variantModels))
	for _, model := range variantModels {
		variant, err := catalog.ReconstructVariant(model.ID, model.ProductID, model.OptionID,
			model.Title, model.PriceInUSD, model.Inventory,
			catalog.PlanType(model.PlanType), catalog.ProductStatus(model.Status), model.CreatedAt)
		if err != nil {
			return nil, err
		}
		variants = append(variants, variant)
	}
	return variants, nil
}
