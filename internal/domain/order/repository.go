package order

import "context"

type Filter struct {
	Status   *Status
	Email    *string
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	GetByNumber(ctx context.Context, number string) (*Order, error)
	List(ctx context.Context, filter Filter) ([]*Order, int64, error)
	// Update persists status changes for unlocked orders.
	Update(ctx context.Context, order *Order) error
}
