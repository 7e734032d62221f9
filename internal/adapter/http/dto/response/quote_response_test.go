package response

import (
	"testing"

	"grafica_gestao/internal/domain/entities"
)

func TestFromQuote_ShareText(t *testing.T) {
	q := entities.Quote{
		ID:         "1001",
		ClientName: "Padaria do João",
		Items: []entities.QuoteItem{
			{ID: "a1", ProductID: "p1", ProductName: "Lona Frontlight 440g", Quantity: 10, UnitPrice: 85, Total: 850},
			{ID: "a2", ProductID: "p4", ProductName: "Instalação (Hora Técnica)", Quantity: 2, UnitPrice: 150, Total: 300},
		},
		Total:  1150,
		Status: entities.QuoteStatusAprovado,
	}

	resp := FromQuote(q)

	if len(resp.Items) != 2 || resp.Items[0].Total != 850 {
		t.Fatalf("unexpected items: %+v", resp.Items)
	}
	if resp.Status != "Aprovado" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}

	want := "Olá Padaria do João, aqui está seu orçamento #1001 no valor de R$ 1150.00. Itens: Lona Frontlight 440g, Instalação (Hora Técnica)."
	if resp.ShareText != want {
		t.Fatalf("unexpected share text:\n%q\nwant:\n%q", resp.ShareText, want)
	}
}

func TestFromQuotes_PreservesOrder(t *testing.T) {
	quotes := []entities.Quote{
		{ID: "new"},
		{ID: "old"},
	}
	out := FromQuotes(quotes)
	if len(out) != 2 || out[0].ID != "new" || out[1].ID != "old" {
		t.Fatalf("order not preserved: %+v", out)
	}
}
