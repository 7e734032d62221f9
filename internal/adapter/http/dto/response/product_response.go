package response

import "grafica_gestao/internal/domain/entities"

type ProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Unit: p.Unit, Price: p.Price, Cost: p.Cost}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = FromProduct(p)
	}
	return out
}
