package repository

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// OrderRepository is the persistence port for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	Delete(ctx context.Context, id string) error
}
