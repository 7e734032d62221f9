package response

import (
	"time"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase"
)

type OrderNoteResponse struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type ProductionOrderResponse struct {
	ID          string              `json:"id"`
	QuoteID     string              `json:"quote_id,omitempty"`
	ClientName  string              `json:"client_name"`
	Title       string              `json:"title"`
	Stage       string              `json:"stage"`
	Priority    string              `json:"priority"`
	Deadline    time.Time           `json:"deadline"`
	Description string              `json:"description"`
	Items       []string            `json:"items"`
	Notes       []OrderNoteResponse `json:"notes"`
}

func FromProductionOrder(o entities.ProductionOrder) ProductionOrderResponse {
	notes := make([]OrderNoteResponse, len(o.Notes))
	for i, n := range o.Notes {
		notes[i] = OrderNoteResponse{ID: n.ID, Text: n.Text, Author: n.Author, CreatedAt: n.CreatedAt}
	}
	return ProductionOrderResponse{
		ID:          o.ID,
		QuoteID:     o.QuoteID,
		ClientName:  o.ClientName,
		Title:       o.Title,
		Stage:       string(o.Stage),
		Priority:    string(o.Priority),
		Deadline:    o.Deadline,
		Description: o.Description,
		Items:       o.Items,
		Notes:       notes,
	}
}

func FromProductionOrders(orders []entities.ProductionOrder) []ProductionOrderResponse {
	out := make([]ProductionOrderResponse, len(orders))
	for i, o := range orders {
		out[i] = FromProductionOrder(o)
	}
	return out
}

type BoardColumnResponse struct {
	Stage  string                    `json:"stage"`
	Count  int                       `json:"count"`
	Orders []ProductionOrderResponse `json:"orders"`
}

func FromBoard(columns []usecase.StageColumn) []BoardColumnResponse {
	out := make([]BoardColumnResponse, len(columns))
	for i, col := range columns {
		out[i] = BoardColumnResponse{
			Stage:  string(col.Stage),
			Count:  len(col.Orders),
			Orders: FromProductionOrders(col.Orders),
		}
	}
	return out
}
