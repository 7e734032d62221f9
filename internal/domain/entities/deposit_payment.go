package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome of a deposit charge.
type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DepositPayment is the entrada (down payment) collected on an approved
// quote before production starts.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Mercado Pago payload:
//   - MPPayloadRaw keeps the provider response body (JSON) for audit.
//   - MPPayload is the parsed form, convenient for querying/debugging.
type DepositPayment struct {
	ID      string        `json:"id"`
	QuoteID string        `json:"quote_id"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
