package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// The engine uses it to charge the deposit on an approved quote and keeps the
// provider response payload for traceability.

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway.go

type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
