package usecase

import (
	"context"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"
)

// DashboardSummary holds the figures shown on the landing page. All three
// are derived from the Quotes collection alone; the production board keeps
// its own per-column counts and the two are intentionally not reconciled.
type DashboardSummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	OpenQuotesCount int     `json:"open_quotes_count"`
	ProductionCount int     `json:"production_count"`
}

type IDashboardUseCase interface {
	Summary(ctx context.Context) (DashboardSummary, error)
}

type DashboardUseCase struct {
	quotes interfaces.IQuoteRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(quotes interfaces.IQuoteRepository) *DashboardUseCase {
	return &DashboardUseCase{quotes: quotes}
}

// Summary recomputes the figures on every call; there is no cached aggregate
// state to go stale.
func (u *DashboardUseCase) Summary(ctx context.Context) (DashboardSummary, error) {
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return DashboardSummary{}, err
	}

	var s DashboardSummary
	for _, q := range quotes {
		switch q.Status {
		case entities.QuoteStatusAprovado, entities.QuoteStatusEmProducao, entities.QuoteStatusConcluido:
			s.TotalRevenue += q.Total
		case entities.QuoteStatusRascunho, entities.QuoteStatusEmAberto:
			s.OpenQuotesCount++
		}
		if q.Status == entities.QuoteStatusEmProducao {
			s.ProductionCount++
		}
	}
	return s, nil
}
