package response

import (
	"fmt"
	"strings"
	"time"

	"grafica_gestao/internal/domain/entities"
)

type QuoteItemResponse struct {
	ID          string  `json:"id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type QuoteResponse struct {
	ID         string              `json:"id"`
	ClientName string              `json:"client_name"`
	Items      []QuoteItemResponse `json:"items"`
	Total      float64             `json:"total"`
	Status     string              `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	ValidUntil time.Time           `json:"valid_until"`
	ShareText  string              `json:"share_text"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, len(q.Items))
	for i, it := range q.Items {
		items[i] = QuoteItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		}
	}
	return QuoteResponse{
		ID:         q.ID,
		ClientName: q.ClientName,
		Items:      items,
		Total:      q.Total,
		Status:     string(q.Status),
		CreatedAt:  q.CreatedAt,
		ValidUntil: q.ValidUntil,
		ShareText:  shareText(q),
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, len(quotes))
	for i, q := range quotes {
		out[i] = FromQuote(q)
	}
	return out
}

// shareText is the ready-to-send WhatsApp summary of a quote.
func shareText(q entities.Quote) string {
	names := make([]string, len(q.Items))
	for i, it := range q.Items {
		names[i] = it.ProductName
	}
	return fmt.Sprintf("Olá %s, aqui está seu orçamento #%s no valor de R$ %.2f. Itens: %s.",
		q.ClientName, q.ID, q.Total, strings.Join(names, ", "))
}
