package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"simvia/internal/application/checkout"
	"simvia/internal/domain/order"
	apperrors "simvia/internal/shared/errors"
	"simvia/internal/shared/logger"
)

type ListQuery struct {
	Status   string
	Page     int
	PageSize int
}

type ListResult struct {
	Orders   []*checkout.OrderDTO `json:"orders"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// Service covers order lookup for customers and management for admins.
type Service struct {
	orders order.Repository
	logger logger.Interface
}

func NewService(orders order.Repository, log logger.Interface) *Service {
	return &Service{
		orders: orders,
		logger: log,
	}
}

// GetCustomerOrder fetches one order by number, but only when the caller
// also knows the email it was placed under.
func (s *Service) GetCustomerOrder(ctx context.Context, number, customerEmail string) (*checkout.OrderDTO, error) {
	if number == "" || customerEmail == "" {
		return nil, apperrors.NewValidationError("order number and email are required")
	}

	ord, err := s.orders.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if ord == nil || !strings.EqualFold(ord.CustomerEmail(), customerEmail) {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return checkout.ToOrderDTO(ord), nil
}

func (s *Service) List(ctx context.Context, query ListQuery) (*ListResult, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.PageSize < 1 || query.PageSize > 100 {
		query.PageSize = 20
	}

	filter := order.Filter{
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if query.Status != "" {
		status := order.Status(query.Status)
		if !status.IsValid() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", query.Status))
		}
		filter.Status = &status
	}

	results, total, err := s.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	list := &ListResult{
		Orders:   make([]*checkout.OrderDTO, 0, len(results)),
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	for _, ord := range results {
		list.Orders = append(list.Orders, checkout.ToOrderDTO(ord))
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*checkout.OrderDTO, error) {
	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if ord == nil {
		return nil, apperrors.NewNotFoundError("order not found")
	}
	return checkout.ToOrderDTO(ord), nil
}

// ChangeStatus transitions an order's status. Orders created from checkout
// are locked and reject any mutation.
func (s *Service) ChangeStatus(ctx context.Context, id uint, rawStatus string) (*checkout.OrderDTO, error) {
	status := order.Status(rawStatus)
	if !status.IsValid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid status: %s", rawStatus))
	}

	ord, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if ord == nil {
		return nil, apperrors.NewNotFoundError("order not found")
	}

	if err := ord.ChangeStatus(status); err != nil {
		if errors.Is(err, order.ErrOrderLocked) {
			return nil, apperrors.NewConflictError("checkout orders cannot be modified")
		}
		return nil, apperrors.NewValidationError(err.Error())
	}

	if err := s.orders.Update(ctx, ord); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	s.logger.Infow("order status changed", "order_id", id, "status", status)
	return checkout.ToOrderDTO(ord), nil
}
