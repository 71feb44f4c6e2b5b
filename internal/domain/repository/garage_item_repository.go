package repository

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// GarageItemRepository is the persistence port for garage items.
// Used inside transactions to guarantee consistency of stock updates.
type GarageItemRepository interface {
	Create(ctx context.Context, item *entity.GarageItem) error
	GetByID(ctx context.Context, id string) (*entity.GarageItem, error)
	// GetForUpdate locks the row for the caller's transaction
	// (SELECT ... FOR UPDATE) so check-then-act on stock is serialized.
	GetForUpdate(ctx context.Context, id string) (*entity.GarageItem, error)
	List(ctx context.Context, limit, offset int) ([]*entity.GarageItem, error)
	// AdjustQuantity applies a signed delta to quantity_on_hand.
	AdjustQuantity(ctx context.Context, id string, delta int64) error
	Delete(ctx context.Context, id string) error
}
