package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/saiidhanna21/garage/internal/domain/entity"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

var _ repository.RevenueRepository = (*RevenueRepo)(nil)

// RevenueRepo read-only queries over monthly_profit_cost.
type RevenueRepo struct {
	pool *pgxpool.Pool
}

// NewRevenueRepository builds the adapter.
func NewRevenueRepository(pool *pgxpool.Pool) *RevenueRepo {
	return &RevenueRepo{pool: pool}
}

// ListMonthly returns the monthly profit/cost rows, newest month first.
func (r *RevenueRepo) ListMonthly(ctx context.Context) ([]*entity.MonthlyProfitCost, error) {
	query := `
		SELECT id, month, revenue, cost, profit
		FROM monthly_profit_cost ORDER BY month DESC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list monthly profit cost: %w", err)
	}
	defer rows.Close()
	var list []*entity.MonthlyProfitCost
	for rows.Next() {
		var m entity.MonthlyProfitCost
		if err := rows.Scan(&m.ID, &m.Month, &m.Revenue, &m.Cost, &m.Profit); err != nil {
			return nil, fmt.Errorf("scan monthly profit cost: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
