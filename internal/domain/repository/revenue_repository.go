package repository

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// RevenueRepository exposes the read-only monthly profit/cost rows.
type RevenueRepository interface {
	ListMonthly(ctx context.Context) ([]*entity.MonthlyProfitCost, error)
}
