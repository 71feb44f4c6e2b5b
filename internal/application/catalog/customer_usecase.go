package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// CustomerUseCase customer management.
type CustomerUseCase struct {
	repo repository.CustomerRepository
}

// NewCustomerUseCase builds the use case.
func NewCustomerUseCase(repo repository.CustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

// Create inserts a new customer. An existing customer with the same
// email (case-insensitive) makes this a no-op returning ErrDuplicate;
// the store's unique index backs the same guard under concurrency.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	email := foldKey(in.Email)
	existing, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     email,
		Phone:     in.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer, 0), nil
}

// List returns customers with their live order counts. A non-positive
// limit returns the full catalog (composite views embed it whole).
func (uc *CustomerUseCase) List(ctx context.Context, limit, offset int) ([]*dto.CustomerResponse, error) {
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.ListWithOrderCount(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.CustomerResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCustomerResponse(&c.Customer, c.TotalOrders))
	}
	return out, nil
}

// Delete removes a customer. Unknown id returns ErrNotFound.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toCustomerResponse(c *entity.Customer, totalOrders int64) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		TotalOrders: totalOrders,
		CreatedAt:   c.CreatedAt,
	}
}
