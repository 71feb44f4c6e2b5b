package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// GarageItemUseCase stocked item management. Creating an item sets its
// initial quantity on hand; after that, only order reconciliation
// touches the quantity.
type GarageItemUseCase struct {
	itemRepo     repository.GarageItemRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewGarageItemUseCase builds the use case.
func NewGarageItemUseCase(
	itemRepo repository.GarageItemRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
) *GarageItemUseCase {
	return &GarageItemUseCase{itemRepo: itemRepo, categoryRepo: categoryRepo, productRepo: productRepo}
}

// Create inserts a garage item referencing an existing product and category.
func (uc *GarageItemUseCase) Create(ctx context.Context, in dto.CreateGarageItemRequest) (*dto.GarageItemResponse, error) {
	if in.ProductID == "" || in.CategoryID == "" || in.QuantityOnHand < 0 {
		return nil, domain.ErrInvalidInput
	}
	cost, err := decimal.NewFromString(in.ProductCost)
	if err != nil || cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	price, err := decimal.NewFromString(in.RetailPrice)
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	item := &entity.GarageItem{
		ID:             uuid.New().String(),
		ProductID:      in.ProductID,
		Description:    in.Description,
		ProductCost:    cost,
		RetailPrice:    price,
		QuantityOnHand: in.QuantityOnHand,
		CategoryID:     in.CategoryID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return ToGarageItemResponse(item), nil
}

// List returns items plus the category and product catalogs the
// inventory view renders alongside them. The catalogs are always
// complete so every listed item can resolve its references; only the
// items honor the page (non-positive limit returns them all).
func (uc *GarageItemUseCase) List(ctx context.Context, limit, offset int) (*dto.GarageItemListResponse, error) {
	if offset < 0 {
		offset = 0
	}
	items, err := uc.itemRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}
	out := &dto.GarageItemListResponse{
		Items:      make([]*dto.GarageItemResponse, 0, len(items)),
		Categories: make([]*dto.CategoryResponse, 0, len(categories)),
		Products:   make([]*dto.ProductResponse, 0, len(products)),
	}
	for _, it := range items {
		out.Items = append(out.Items, ToGarageItemResponse(it))
	}
	for _, c := range categories {
		out.Categories = append(out.Categories, toCategoryResponse(c))
	}
	for _, p := range products {
		out.Products = append(out.Products, toProductResponse(p))
	}
	return out, nil
}

// Get returns one item. Unknown id returns ErrNotFound.
func (uc *GarageItemUseCase) Get(ctx context.Context, id string) (*dto.GarageItemResponse, error) {
	item, err := uc.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return ToGarageItemResponse(item), nil
}

// Delete removes an item. Unknown id returns ErrNotFound.
func (uc *GarageItemUseCase) Delete(ctx context.Context, id string) error {
	return uc.itemRepo.Delete(ctx, id)
}

// ToGarageItemResponse maps the entity to its wire shape. Exported for
// the order handler, which returns the updated item with a placed order.
func ToGarageItemResponse(i *entity.GarageItem) *dto.GarageItemResponse {
	return &dto.GarageItemResponse{
		ID:             i.ID,
		ProductID:      i.ProductID,
		Description:    i.Description,
		ProductCost:    i.ProductCost.StringFixed(2),
		RetailPrice:    i.RetailPrice.StringFixed(2),
		QuantityOnHand: i.QuantityOnHand,
		CategoryID:     i.CategoryID,
		CreatedAt:      i.CreatedAt,
	}
}
