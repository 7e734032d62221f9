package request

import (
	"strings"

	"grafica_gestao/internal/domain/entities"
)

type QuoteItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CreateQuoteRequest struct {
	ClientName string             `json:"client_name" binding:"required"`
	Items      []QuoteItemRequest `json:"items" binding:"required"`
}

func (r CreateQuoteRequest) ResolveClientName() string {
	return strings.TrimSpace(r.ClientName)
}

// BuildCart resolves the requested lines against the catalog through the
// cart helpers, so every stored line carries a name/price snapshot taken
// now. Unknown products and non-positive quantities contribute nothing.
func (r CreateQuoteRequest) BuildCart(catalog []entities.Product) []entities.QuoteItem {
	cart := []entities.QuoteItem{}
	for _, it := range r.Items {
		for n := 0; n < it.Quantity; n++ {
			cart = entities.AddToCart(cart, it.ProductID, catalog)
		}
	}
	return cart
}

type ChangeQuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
