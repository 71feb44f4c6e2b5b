package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// ProductUseCase product catalog management.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create inserts a product. The UPC unique index turns a duplicate code
// into ErrDuplicate at the store boundary.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	upc := strings.TrimSpace(in.UPC)
	if name == "" || upc == "" {
		return nil, domain.ErrInvalidInput
	}
	product := &entity.Product{
		ID:        uuid.New().String(),
		Name:      name,
		UPC:       upc,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns products. A non-positive limit returns the full catalog.
func (uc *ProductUseCase) List(ctx context.Context, limit, offset int) ([]*dto.ProductResponse, error) {
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// Delete removes a product. Unknown id returns ErrNotFound.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{ID: p.ID, Name: p.Name, UPC: p.UPC, CreatedAt: p.CreatedAt}
}
