package dto

// MonthlyProfitCostResponse one row of the monthly revenue report.
type MonthlyProfitCostResponse struct {
	ID      string `json:"id"`
	Month   string `json:"month"` // YYYY-MM
	Revenue string `json:"revenue"`
	Cost    string `json:"cost"`
	Profit  string `json:"profit"`
}
