package response

import (
	"time"

	"grafica_gestao/internal/domain/entities"
)

type DepositPaymentResponse struct {
	ID      string    `json:"id"`
	QuoteID string    `json:"quote_id"`
	Date    time.Time `json:"date"`
	Status  string    `json:"status"`
}

func FromDepositPayment(p entities.DepositPayment) DepositPaymentResponse {
	return DepositPaymentResponse{
		ID:      p.ID,
		QuoteID: p.QuoteID,
		Date:    p.Date,
		Status:  string(p.Status),
	}
}
