package orders

import (
	"context"

	"github.com/gastonduartem/MILAN/internal/types"
	"github.com/gastonduartem/MILAN/internal/validate"
)

type Database interface {
	GetOrders(ctx context.Context) ([]types.Order, error)
	InsertOrder(ctx context.Context, params types.OrderParams) (types.Order, error)
	UpdateOrder(ctx context.Context, id int, params types.OrderParams) (types.Order, error)
	DeleteOrder(ctx context.Context, id int) error
}

// Service validates submissions and applies them to the store. It
// never pre-checks number uniqueness: the write itself is the only
// race-free arbiter, and the store reports the constraint violation
// as db.NumberTakenError.
type Service struct {
	database Database
}

func NewService(database Database) *Service {
	return &Service{database: database}
}

func (s *Service) ListOrders(ctx context.Context) ([]types.Order, error) {
	return s.database.GetOrders(ctx)
}

func (s *Service) CreateOrder(ctx context.Context, input types.OrderInput) (types.Order, error) {

	params, err := validate.Order(input)
	if err != nil {
		return types.Order{}, err
	}
	return s.database.InsertOrder(ctx, params)
}

func (s *Service) UpdateOrder(ctx context.Context, id int, input types.OrderInput) (types.Order, error) {

	params, err := validate.Order(input)
	if err != nil {
		return types.Order{}, err
	}
	return s.database.UpdateOrder(ctx, id, params)
}

func (s *Service) DeleteOrder(ctx context.Context, id int) error {
	return s.database.DeleteOrder(ctx, id)
}
