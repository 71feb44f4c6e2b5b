package orders

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// UseCase reconciles orders against garage item stock. Placing and
// deleting orders run inside a single transaction with the item row
// locked (SELECT FOR UPDATE), so the sufficiency check is never stale
// at the time of the quantity update.
type UseCase struct {
	txRunner  TxRunner
	orderRepo repository.OrderRepository
	itemRepo  repository.GarageItemRepository
}

// NewUseCase builds the use case. orderRepo and itemRepo are pool-bound
// and serve reads outside transactions; writes go through txRunner.
func NewUseCase(txRunner TxRunner, orderRepo repository.OrderRepository, itemRepo repository.GarageItemRepository) *UseCase {
	return &UseCase{txRunner: txRunner, orderRepo: orderRepo, itemRepo: itemRepo}
}

// PlaceOrderInput input for PlaceOrder. CustomerID is dropped for buy
// orders: restocking has no customer.
type PlaceOrderInput struct {
	CustomerID   string
	GarageItemID string
	OrderDate    time.Time
	Type         string
	Quantity     int64
}

// PlaceOrderResult the new order and the item as it stands after the update.
type PlaceOrderResult struct {
	Order *entity.Order
	Item  *entity.GarageItem
}

// PlaceOrder validates the request, locks the item row, rejects a sell
// that exceeds quantity on hand, then inserts the order and applies the
// delta (buy adds, sell subtracts) in one transaction.
func (uc *UseCase) PlaceOrder(ctx context.Context, input PlaceOrderInput) (*PlaceOrderResult, error) {
	switch input.Type {
	case entity.OrderTypeBuy, entity.OrderTypeSell:
	default:
		return nil, domain.ErrInvalidOrderType
	}
	if input.GarageItemID == "" || input.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type == entity.OrderTypeSell && input.CustomerID == "" {
		return nil, domain.ErrInvalidInput
	}

	// Existence check before opening the transaction; the locked read
	// inside the tx is the authoritative one.
	item, err := uc.itemRepo.GetByID(ctx, input.GarageItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &entity.Order{
		ID:           uuid.New().String(),
		GarageItemID: input.GarageItemID,
		OrderDate:    orderDate,
		Type:         input.Type,
		Quantity:     input.Quantity,
		CreatedAt:    time.Now(),
	}
	if input.Type == entity.OrderTypeSell {
		customerID := input.CustomerID
		order.CustomerID = &customerID
	}

	var updated *entity.GarageItem
	err = uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.GarageItemRepository,
	) error {
		// Lock the garage_items row so no other reconciliation
		// interleaves between the check and the update.
		item, err := itemRepo.GetForUpdate(ctx, input.GarageItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if input.Type == entity.OrderTypeSell && input.Quantity > item.QuantityOnHand {
			return domain.ErrInsufficientStock
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}
		if err := itemRepo.AdjustQuantity(ctx, item.ID, order.QuantityDelta()); err != nil {
			return err
		}
		item.QuantityOnHand += order.QuantityDelta()
		item.UpdatedAt = time.Now()
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &PlaceOrderResult{Order: order, Item: updated}, nil
}

// DeleteOrder removes an order and applies the inverse delta to its item
// in the same transaction: a deleted sell restores stock, a deleted buy
// subtracts the quantity it had added. Deleting a buy order performs no
// sufficiency check and can leave quantity on hand negative; the stock
// view surfaces that for manual correction.
func (uc *UseCase) DeleteOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	if orderID == "" {
		return nil, domain.ErrInvalidInput
	}
	var deleted *entity.Order
	err := uc.txRunner.Run(ctx, func(
		orderRepo repository.OrderRepository,
		itemRepo repository.GarageItemRepository,
	) error {
		order, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		switch order.Type {
		case entity.OrderTypeBuy, entity.OrderTypeSell:
		default:
			return domain.ErrInvalidOrderType
		}
		item, err := itemRepo.GetForUpdate(ctx, order.GarageItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if err := orderRepo.Delete(ctx, order.ID); err != nil {
			return err
		}
		if err := itemRepo.AdjustQuantity(ctx, item.ID, -order.QuantityDelta()); err != nil {
			return err
		}
		deleted = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// List returns persisted orders for the orders view.
func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.orderRepo.List(ctx, limit, offset)
}
