package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDepositPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// DepositPaymentHandler charges quote deposits through the payment provider.
type DepositPaymentHandler struct {
	usecase usecase.IDepositPaymentUseCase
	metrics *observability.Metrics
}

func NewDepositPaymentHandler(uc usecase.IDepositPaymentUseCase, metrics *observability.Metrics) *DepositPaymentHandler {
	return &DepositPaymentHandler{usecase: uc, metrics: metrics}
}

// ChargeDeposit godoc
// @Summary Charge a quote deposit
// @Description Forwards the Mercado Pago payment payload for an approved quote; amount and reference are filled in server-side
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param payment body object true "Mercado Pago payment payload"
// @Success 201 {object} response.DepositPaymentResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Failure 422 {object} pkg.HTTPError
// @Router /v1/quotes/{id}/deposit [post]
func (h *DepositPaymentHandler) ChargeDeposit(c *gin.Context) {
	mpPayload, ok := readMPPayload(c)
	if !ok {
		c.JSON(errInvalidDepositPayload.HTTPStatus, errInvalidDepositPayload.ToHTTPError())
		return
	}

	payment, err := h.usecase.CreateAndApprove(c.Request.Context(), c.Param("id"), mpPayload)
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.DepositCharged()
	c.JSON(http.StatusCreated, response.FromDepositPayment(payment))
}

// GetDepositPayment godoc
// @Summary Get a deposit payment by ID
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} response.DepositPaymentResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/payments/{id} [get]
func (h *DepositPaymentHandler) GetDepositPayment(c *gin.Context) {
	payment, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDepositPayment(payment))
}

// ListQuoteDeposits godoc
// @Summary List deposit payments for a quote
// @Tags payments
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {array} response.DepositPaymentResponse
// @Router /v1/quotes/{id}/deposit [get]
func (h *DepositPaymentHandler) ListQuoteDeposits(c *gin.Context) {
	payments, err := h.usecase.ListByQuoteID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDepositPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.DepositPaymentResponse, len(payments))
	for i, p := range payments {
		out[i] = response.FromDepositPayment(p)
	}
	c.JSON(http.StatusOK, out)
}

// readMPPayload keeps the provider payload opaque: the body is forwarded
// verbatim after a well-formedness check, never re-marshalled field by field.
func readMPPayload(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil || len(body) == 0 {
		return nil, false
	}
	if !json.Valid(body) {
		return nil, false
	}
	return json.RawMessage(body), true
}

func mapDepositPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentQuoteID),
		errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotApproved):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_APPROVED", "Quote is not approved", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDepositPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Deposit payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("PAYMENT_REJECTED", "Payment provider rejected the request", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized),
		errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
