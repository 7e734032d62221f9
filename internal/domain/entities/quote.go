package entities

import "time"

// QuoteStatus represents the commercial lifecycle of a quote (orçamento).
//
// Domain notes:
//   - Wire values are the Portuguese labels shown to the shop owner.
//   - Transitions are deliberately unrestricted: any status can be set from
//     any other. The source workflow defines no guard table, so none is
//     enforced here.
type QuoteStatus string

const (
	QuoteStatusRascunho   QuoteStatus = "Rascunho"
	QuoteStatusEmAberto   QuoteStatus = "Em Aberto"
	QuoteStatusAprovado   QuoteStatus = "Aprovado"
	QuoteStatusEmProducao QuoteStatus = "Em Produção"
	QuoteStatusConcluido  QuoteStatus = "Concluído"
	QuoteStatusCancelado  QuoteStatus = "Cancelado"
)

// QuoteStatuses lists every valid status, in business progression order.
func QuoteStatuses() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusRascunho,
		QuoteStatusEmAberto,
		QuoteStatusAprovado,
		QuoteStatusEmProducao,
		QuoteStatusConcluido,
		QuoteStatusCancelado,
	}
}

func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusRascunho, QuoteStatusEmAberto, QuoteStatusAprovado,
		QuoteStatusEmProducao, QuoteStatusConcluido, QuoteStatusCancelado:
		return true
	}
	return false
}

// QuoteItem is one priced line of a quote.
//
// ProductName and UnitPrice are snapshots taken when the line is added.
// They never track later catalog changes; a historical quote must read the
// same after a price update as it did the day it was sent.
type QuoteItem struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// Quote is a priced proposal sent to a client.
//
// Invariant: Total always equals the sum of the item totals. It is recomputed
// whenever items change, never stored independently of that recomputation.
type Quote struct {
	ID         string      `json:"id"`
	ClientName string      `json:"client_name"`
	Items      []QuoteItem `json:"items"`
	Total      float64     `json:"total"`
	Status     QuoteStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	ValidUntil time.Time   `json:"valid_until"`
}

// ItemsTotal sums the line totals of the given cart.
func ItemsTotal(items []QuoteItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Total
	}
	return total
}
