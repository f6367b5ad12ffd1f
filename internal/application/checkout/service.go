package checkout

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"simvia/internal/domain/catalog"
	"simvia/internal/domain/order"
	"simvia/internal/infrastructure/email"
	apperrors "simvia/internal/shared/errors"
	"simvia/internal/shared/logger"
)

type ItemInput struct {
	ProductID uint  `json:"productId"`
	VariantID *uint `json:"variantId,omitempty"`
	Quantity  int   `json:"quantity"`
}

type CreateOrderCommand struct {
	CustomerEmail string
	Items         []ItemInput
}

type OrderDTO struct {
	ID            uint           `json:"id"`
	Number        string         `json:"number"`
	CustomerEmail string         `json:"customerEmail"`
	Amount        float64        `json:"amount"`
	Currency      string         `json:"currency"`
	Status        string         `json:"status"`
	Items         []OrderItemDTO `json:"items"`
}

type OrderItemDTO struct {
	ProductID   uint               `json:"productId"`
	VariantID   *uint              `json:"variantId,omitempty"`
	Quantity    int                `json:"quantity"`
	UnitPrice   float64            `json:"unitPrice"`
	Activations []order.Activation `json:"activations"`
}

// Service creates checkout orders. Prices are always read from the store,
// never trusted from the request. A fresh set of eSIM activations is
// fabricated per quantity unit and the confirmation mail is best-effort.
type Service struct {
	products catalog.ProductRepository
	variants catalog.VariantRepository
	orders   order.Repository
	mailer   email.Sender
	logger   logger.Interface
}

func NewService(
	products catalog.ProductRepository,
	variants catalog.VariantRepository,
	orders order.Repository,
	mailer email.Sender,
	log logger.Interface,
) *Service {
	return &Service{
		products: products,
		variants: variants,
		orders:   orders,
		mailer:   mailer,
		logger:   log,
	}
}

var validate = validator.New()

func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*OrderDTO, error) {
	if err := validate.Var(cmd.CustomerEmail, "required,email"); err != nil {
		return nil, apperrors.NewValidationError("a valid customer email is required")
	}
	if len(cmd.Items) == 0 {
		return nil, apperrors.NewValidationError("at least one item is required")
	}

	items := make([]order.Item, 0, len(cmd.Items))
	for _, input := range cmd.Items {
		item, err := s.buildItem(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	ord, err := order.NewCheckoutOrder(cmd.CustomerEmail, items)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.orders.Create(ctx, ord); err != nil {
		s.logger.Errorw("failed to persist order", "error", err)
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.mailer.SendOrderConfirmation(ord); err != nil {
		s.logger.Warnw("failed to send order confirmation",
			"order_number", ord.Number(),
			"error", err)
	}

	s.logger.Infow("order created",
		"order_number", ord.Number(),
		"amount", ord.Amount(),
		"items", len(items))
	return ToOrderDTO(ord), nil
}

func (s *Service) buildItem(ctx context.Context, input ItemInput) (order.Item, error) {
	if input.Quantity < 1 {
		return order.Item{}, apperrors.NewValidationError("item quantity must be at least 1")
	}

	product, err := s.products.GetByID(ctx, input.ProductID)
	if err != nil {
		return order.Item{}, fmt.Errorf("failed to get product %d: %w", input.ProductID, err)
	}
	if product == nil || !product.IsPublished() {
		return order.Item{}, apperrors.NewNotFoundError(fmt.Sprintf("product %d not found", input.ProductID))
	}

	var unitPrice float64
	if input.VariantID != nil {
		variant, err := s.findVariant(ctx, product.ID(), *input.VariantID)
		if err != nil {
			return order.Item{}, err
		}
		unitPrice = variant.PriceUSD()
	} else {
		if !product.BasePriceEnabled() {
			return order.Item{}, apperrors.NewValidationError(
				fmt.Sprintf("product %d requires a variant selection", input.ProductID))
		}
		unitPrice = product.BasePriceUSD()
	}

	return order.Item{
		ProductID:   product.ID(),
		VariantID:   input.VariantID,
		Quantity:    input.Quantity,
		UnitPrice:   unitPrice,
		Activations: order.GenerateActivations(input.Quantity),
	}, nil
}

func (s *Service) findVariant(ctx context.Context, productID, variantID uint) (*catalog.Variant, error) {
	variants, err := s.variants.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants for product %d: %w", productID, err)
	}
	for _, v := range variants {
		if v.ID() == variantID {
			return v, nil
		}
	}
	return nil, apperrors.NewNotFoundError(
		fmt.Sprintf("variant %d not found on product %d", variantID, productID))
}

func ToOrderDTO(ord *order.Order) *OrderDTO {
	dto := &OrderDTO{
		ID:            ord.ID(),
		Number:        ord.Number(),
		CustomerEmail: ord.CustomerEmail(),
		Amount:        ord.Amount(),
		Currency:      ord.Currency(),
		Status:        string(ord.Status()),
		Items:         make([]OrderItemDTO, 0, len(ord.Items())),
	}
	for _, item := range ord.Items() {
		dto.Items = append(dto.Items, OrderItemDTO{
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			Activations: item.Activations,
		})
	}
	return dto
}
