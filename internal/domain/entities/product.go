package entities

// Product is a catalog entry of the print shop (materials and services).
//
// Catalog entries are immutable once created: quotes copy name and price at
// add-time, so editing a product would silently rewrite commercial history.
// Price and Cost are per Unit ("m²", "unid", "milheiro", "hora", ...).
type Product struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Unit  string  `json:"unit"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}
