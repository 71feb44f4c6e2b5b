package orders

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// TxRunner executes a function inside a DB transaction, handing it
// repositories bound to that transaction. Guarantees that the stock
// check, the order write and the quantity update commit or roll back
// as one unit.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		orderRepo repository.OrderRepository,
		itemRepo repository.GarageItemRepository,
	) error) error
}
