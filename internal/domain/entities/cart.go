package entities

import "github.com/google/uuid"

// Cart helpers are pure: they never touch persistence. The caller keeps the
// working cart and only a full CreateQuote stores anything.

// AddToCart adds one unit of the given product to the cart.
//
// If the product is already present the existing line is incremented and its
// total recomputed; otherwise a new line is appended with the product's name
// and current price copied in (snapshot). The input slice is not mutated.
func AddToCart(cart []QuoteItem, productID string, catalog []Product) []QuoteItem {
	var product *Product
	for i := range catalog {
		if catalog[i].ID == productID {
			product = &catalog[i]
			break
		}
	}
	if product == nil {
		return cart
	}

	out := make([]QuoteItem, len(cart))
	copy(out, cart)

	for i := range out {
		if out[i].ProductID == productID {
			out[i].Quantity++
			out[i].Total = float64(out[i].Quantity) * out[i].UnitPrice
			return out
		}
	}

	return append(out, QuoteItem{
		ID:          uuid.NewString(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.Price,
		Total:       product.Price,
	})
}

// RemoveFromCart removes the line with the given item id, if present.
func RemoveFromCart(cart []QuoteItem, itemID string) []QuoteItem {
	out := make([]QuoteItem, 0, len(cart))
	for _, it := range cart {
		if it.ID != itemID {
			out = append(out, it)
		}
	}
	return out
}
