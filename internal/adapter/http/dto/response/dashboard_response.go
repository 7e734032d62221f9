package response

import "grafica_gestao/internal/usecase"

type DashboardResponse struct {
	TotalRevenue    float64 `json:"total_revenue"`
	OpenQuotesCount int     `json:"open_quotes_count"`
	ProductionCount int     `json:"production_count"`
}

func FromDashboardSummary(s usecase.DashboardSummary) DashboardResponse {
	return DashboardResponse{
		TotalRevenue:    s.TotalRevenue,
		OpenQuotesCount: s.OpenQuotesCount,
		ProductionCount: s.ProductionCount,
	}
}
