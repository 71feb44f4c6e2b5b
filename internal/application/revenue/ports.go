package revenue

import (
	"context"

	"github.com/saiidhanna21/garage/internal/domain/entity"
)

// ReportGenerator renders the monthly profit/cost report as a PDF.
type ReportGenerator interface {
	GenerateMonthlyReport(ctx context.Context, rows []*entity.MonthlyProfitCost) ([]byte, error)
}
