package repository

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// CustomerRepository is the persistence port for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	GetByEmail(ctx context.Context, email string) (*entity.Customer, error)
	// ListWithOrderCount returns customers together with how many live
	// orders reference each one.
	ListWithOrderCount(ctx context.Context, limit, offset int) ([]*entity.CustomerWithOrders, error)
	Delete(ctx context.Context, id string) error
}
