// Package pdf renders the monthly profit/cost report as a printable
// A4 document: a title header, one table row per month, and a summary
// row with the totals across the listed period.
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/saiidhanna21/garage/internal/application/revenue"
	"github.com/saiidhanna21/garage/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 60, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ revenue.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements revenue.ReportGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReport renders the report and returns its bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(_ context.Context, rows []*entity.MonthlyProfitCost) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Monthly Profit & Cost Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(monthRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(totalsRow(rows))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow() core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Monthly Profit & Cost Report", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+time.Now().Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Month", 3, align.Left),
		h("Revenue", 3, align.Right),
		h("Cost", 3, align.Right),
		h("Profit", 3, align.Right),
	)
}

func monthRow(r *entity.MonthlyProfitCost) core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	return row.New(6).Add(
		cell(r.Month.Format("January 2006"), 3, align.Left),
		cell(r.Revenue.StringFixed(2), 3, align.Right),
		cell(r.Cost.StringFixed(2), 3, align.Right),
		cell(r.Profit.StringFixed(2), 3, align.Right),
	)
}

func totalsRow(rows []*entity.MonthlyProfitCost) core.Row {
	revenue, cost, profit := decimal.Zero, decimal.Zero, decimal.Zero
	for _, r := range rows {
		revenue = revenue.Add(r.Revenue)
		cost = cost.Add(r.Cost)
		profit = profit.Add(r.Profit)
	}
	cell := func(value string, size int) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
		}))
	}
	return row.New(8).Add(
		col.New(3).Add(text.New("TOTAL", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2,
		})),
		cell(revenue.StringFixed(2), 3),
		cell(cost.StringFixed(2), 3),
		cell(profit.StringFixed(2), 3),
	)
}
