package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"simvia/internal/domain/order"
	"simvia/internal/infrastructure/persistence/models"
	"simvia/internal/shared/logger"
)

type OrderRepositoryImpl struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewOrderRepository(db *gorm.DB, logger logger.Interface) order.Repository {
	return &OrderRepositoryImpl{db: db, logger: logger}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, o *order.Order) error {
	model, err := orderToModel(o)
	if err != nil {
		r.logger.Errorw("failed to convert order to model", "error", err)
		return fmt.Errorf("failed to convert order to model: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create order", "error", err, "number", o.Number())
		return fmt.Errorf("failed to create order: %w", err)
	}

	if err := o.SetID(model.ID); err != nil {
		return err
	}

	r.logger.Infow("order created", "order_id", model.ID, "number", o.Number())
	return nil
}

func (r *OrderRepositoryImpl) GetByID(ctx context.Context, id uint) (*order.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Preload("Items").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by ID", "error", err, "order_id", id)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return orderToEntity(&model)
}

func (r *OrderRepositoryImpl) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	var model models.OrderModel
	err := r.db.WithContext(ctx).Preload("Items").Where("number = ?", number).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get order by number", "error", err, "number", number)
		return nil, fmt.Errorf("failed to get order by number: %w", err)
	}
	return orderToEntity(&model)
}

func (r *OrderRepositoryImpl) List(ctx context.Context, filter order.Filter) ([]*order.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.Email != nil {
		query = query.Where("customer_email = ?", *filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count orders", "error", err)
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var orderModels []*models.OrderModel
	if err := query.Preload("Items").Order("created_at desc").Find(&orderModels).Error; err != nil {
		r.logger.Errorw("failed to list orders", "error", err)
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*order.Order, 0, len(orderModels))
	for _, model := range orderModels {
		o, err := orderToEntity(model)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, o *order.Order) error {
	if o.ID() == 0 {
		return fmt.Errorf("order ID is required for update")
	}

	result := r.db.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", o.ID()).
		Updates(map[string]interface{}{
			"status":     string(o.Status()),
			"updated_at": o.UpdatedAt(),
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update order", "error", result.Error, "order_id", o.ID())
		return fmt.Errorf("failed to update order: %w", result.Error)
	}

	r.logger.Infow("order updated", "order_id", o.ID(), "status", o.Status())
	return nil
}

func orderToModel(o *order.Order) (*models.OrderModel, error) {
	items := make([]models.OrderItemModel, 0, len(o.Items()))
	for _, item := range o.Items() {
		activations, err := json.Marshal(item.Activations)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activations: %w", err)
		}
		items = append(items, models.OrderItemModel{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Activations: datatypes.JSON(activations),
		})
	}

	return &models.OrderModel{
		Number:              o.Number(),
		CustomerEmail:       o.CustomerEmail(),
		Amount:              o.Amount(),
		Currency:            o.Currency(),
		Status:              string(o.Status()),
		CreatedFromCheckout: o.CreatedFromCheckout(),
		Items:               items,
	}, nil
}

func orderToEntity(model *models.OrderModel) (*order.Order, error) {
	items := make([]order.Item, 0, len(model.Items))
	for _, itemModel := range model.Items {
		var activations []order.Activation
		if len(itemModel.Activations) > 0 {
			if err := json.Unmarshal(itemModel.Activations, &activations); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activations: %w", err)
			}
		}
		items = append(items, order.Item{
			ProductID:   itemModel.ProductID,
			VariantID:   itemModel.VariantID,
			Quantity:    itemModel.Quantity,
			UnitPrice:   itemModel.UnitPrice,
			Activations: activations,
		})
	}

	o, err := order.ReconstructOrder(model.ID, model.Number, model.CustomerEmail,
		model.Amount, model.Currency, order.Status(model.Status),
		model.CreatedFromCheckout, items, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct order: %w", err)
	}
	return o, nil
}
