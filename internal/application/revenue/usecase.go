package revenue

import (
	"context"

	"github.com/saiidhanna21/garage/internal/application/dto"
	"github.com/saiidhanna21/garage/internal/domain/repository"
)

// UseCase read-only monthly profit/cost reporting.
type UseCase struct {
	repo      repository.RevenueRepository
	generator ReportGenerator
}

// NewUseCase builds the use case.
func NewUseCase(repo repository.RevenueRepository, generator ReportGenerator) *UseCase {
	return &UseCase{repo: repo, generator: generator}
}

// List returns the monthly profit/cost rows.
func (uc *UseCase) List(ctx context.Context) ([]*dto.MonthlyProfitCostResponse, error) {
	rows, err := uc.repo.ListMonthly(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MonthlyProfitCostResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, &dto.MonthlyProfitCostResponse{
			ID:      r.ID,
			Month:   r.Month.Format("2006-01"),
			Revenue: r.Revenue.StringFixed(2),
			Cost:    r.Cost.StringFixed(2),
			Profit:  r.Profit.StringFixed(2),
		})
	}
	return out, nil
}

// Report renders the rows as a PDF.
func (uc *UseCase) Report(ctx context.Context) ([]byte, error) {
	rows, err := uc.repo.ListMonthly(ctx)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateMonthlyReport(ctx, rows)
}
