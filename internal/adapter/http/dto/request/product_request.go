package request

type AddProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Unit  string  `json:"unit" binding:"required"`
	Price float64 `json:"price"`
	Cost  float64 `json:"cost"`
}
