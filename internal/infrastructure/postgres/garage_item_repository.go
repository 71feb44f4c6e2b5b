package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/saiidhanna21/garage/internal/domain"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

var _ repository.GarageItemRepository = (*GarageItemRepo)(nil)

// GarageItemRepo GarageItemRepository over PostgreSQL (usable with pool or tx).
type GarageItemRepo struct {
	q Querier
}

// NewGarageItemRepository builds the adapter. Pass a pool or tx (Querier).
func NewGarageItemRepository(q Querier) *GarageItemRepo {
	return &GarageItemRepo{q: q}
}

const garageItemColumns = `id, product_id, description, product_cost, retail_price, quantity_on_hand, category_id, created_at, updated_at`

// Create persists a new garage item.
func (r *GarageItemRepo) Create(ctx context.Context, item *entity.GarageItem) error {
	query := `
		INSERT INTO garage_items (` + garageItemColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		item.ID, item.ProductID, item.Description, item.ProductCost, item.RetailPrice,
		item.QuantityOnHand, item.CategoryID, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert garage item: %w", err)
	}
	return nil
}

// GetByID fetches an item by id. Missing rows return (nil, nil).
func (r *GarageItemRepo) GetByID(ctx context.Context, id string) (*entity.GarageItem, error) {
	query := `SELECT ` + garageItemColumns + ` FROM garage_items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get garage item")
}

// GetForUpdate fetches an item and locks its row for the caller's
// transaction (SELECT ... FOR UPDATE).
func (r *GarageItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.GarageItem, error) {
	query := `SELECT ` + garageItemColumns + ` FROM garage_items WHERE id = $1 FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, id), "get garage item for update")
}

// List returns items ordered by creation time. A non-positive limit
// returns every item.
func (r *GarageItemRepo) List(ctx context.Context, limit, offset int) ([]*entity.GarageItem, error) {
	query := `
		SELECT ` + garageItemColumns + `
		FROM garage_items ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limitArg(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("list garage items: %w", err)
	}
	defer rows.Close()
	var list []*entity.GarageItem
	for rows.Next() {
		var i entity.GarageItem
		if err := rows.Scan(&i.ID, &i.ProductID, &i.Description, &i.ProductCost, &i.RetailPrice,
			&i.QuantityOnHand, &i.CategoryID, &i.CreatedAt, &i.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan garage item: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}

// AdjustQuantity applies a signed delta to quantity_on_hand.
func (r *GarageItemRepo) AdjustQuantity(ctx context.Context, id string, delta int64) error {
	query := `UPDATE garage_items SET quantity_on_hand = quantity_on_hand + $2, updated_at = now() WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an item. Unknown id returns ErrNotFound.
func (r *GarageItemRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM garage_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete garage item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GarageItemRepo) scanOne(row pgx.Row, op string) (*entity.GarageItem, error) {
	var i entity.GarageItem
	err := row.Scan(&i.ID, &i.ProductID, &i.Description, &i.ProductCost, &i.RetailPrice,
		&i.QuantityOnHand, &i.CategoryID, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &i, nil
}
