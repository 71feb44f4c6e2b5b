package repository

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// CategoryRepository is the persistence port for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetByName matches on the case-folded name.
	GetByName(ctx context.Context, name string) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
