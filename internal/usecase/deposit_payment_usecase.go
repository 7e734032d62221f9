package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositPaymentNotFound      = errors.New("deposit payment not found")
	ErrInvalidPaymentQuoteID       = errors.New("invalid quote_id")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrInvalidMPPayload            = errors.New("invalid mercado pago payload")
	ErrQuoteNotApproved            = errors.New("quote not approved")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest    = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized  = errors.New("payment gateway unauthorized")
)

// IDepositPaymentUseCase charges the entrada (down payment) on a quote.
//
// A deposit can only be taken once a quote reaches Aprovado; the charge
// amount is always the quote total as stored, never what the caller sends.

type IDepositPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo    interfaces.IDepositPaymentRepository
	quotes  interfaces.IQuoteRepository
	gateway interfaces.IPaymentGateway
	logger  *zap.Logger
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(
	repo interfaces.IDepositPaymentRepository,
	quotes interfaces.IQuoteRepository,
	gateway interfaces.IPaymentGateway,
	logger *zap.Logger,
) *DepositPaymentUseCase {
	return &DepositPaymentUseCase{repo: repo, quotes: quotes, gateway: gateway, logger: logger}
}

func (u *DepositPaymentUseCase) CreateAndApprove(ctx context.Context, quoteID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentQuoteID
	}
	if len(mpPayload) == 0 {
		mpPayload = json.RawMessage("{}")
	}
	if !json.Valid(mpPayload) {
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, ErrPaymentGatewayNotConfigured
	}

	quote, err := u.findQuote(ctx, quoteID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if quote.Status != entities.QuoteStatusAprovado {
		u.logger.Warn("deposit refused: quote not approved",
			zap.String("quote_id", quoteID),
			zap.String("status", string(quote.Status)),
		)
		return entities.DepositPayment{}, ErrQuoteNotApproved
	}

	// Mercado Pago reconciles events through external_reference; the amount
	// is taken from the stored quote, the source of truth.
	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = quoteID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Sinal do orçamento %s - %s", quoteID, quote.ClientName)
	}
	reqMap["transaction_amount"] = quote.Total
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		u.logger.Warn("payment gateway failed", zap.String("quote_id", quoteID), zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.DepositPayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.DepositPayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.DepositPayment{}, err
	}
	u.logger.Info("payment gateway success",
		zap.String("quote_id", quoteID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed", zap.String("quote_id", quoteID), zap.Error(err))
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		QuoteID:      quoteID,
		Date:         time.Now().UTC(),
		Status:       entities.PaymentStatusAprovado,
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	return u.repo.Create(ctx, p)
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.DepositPayment, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return nil, ErrInvalidPaymentQuoteID
	}
	return u.repo.ListByQuoteID(ctx, quoteID)
}

func (u *DepositPaymentUseCase) findQuote(ctx context.Context, quoteID string) (entities.Quote, error) {
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == quoteID {
			return q, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
