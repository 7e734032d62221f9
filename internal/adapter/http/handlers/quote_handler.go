package handlers

import (
	"errors"
	"net/http"

	request "grafica_gestao/internal/adapter/http/dto/request"
	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for sales quotes.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
	catalog usecase.ICatalogUseCase
	metrics *observability.Metrics
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, catalog usecase.ICatalogUseCase, metrics *observability.Metrics) *QuoteHandler {
	return &QuoteHandler{usecase: uc, catalog: catalog, metrics: metrics}
}

// ListQuotes godoc
// @Summary List quotes
// @Description Lists all quotes, most recent first
// @Tags quotes
// @Produce json
// @Success 200 {array} response.QuoteResponse
// @Router /v1/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// GetQuote godoc
// @Summary Get quote by ID
// @Tags quotes
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quote, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// CreateQuote godoc
// @Summary Create a quote
// @Description Creates a quote from catalog lines; prices are snapshotted at creation time
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body request.CreateQuoteRequest true "Quote payload"
// @Success 201 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/quotes [post]
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	products, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.CreateQuote(c.Request.Context(), payload.ResolveClientName(), payload.BuildCart(products))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.QuoteCreated()
	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

// ChangeQuoteStatus godoc
// @Summary Change quote status
// @Description Moves a quote to any of the six statuses; transitions are unrestricted
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Param status body request.ChangeQuoteStatusRequest true "Target status"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/quotes/{id}/status [patch]
func (h *QuoteHandler) ChangeQuoteStatus(c *gin.Context) {
	var payload request.ChangeQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.ChangeStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(payload.Status))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.QuoteStatusChanged(payload.Status)
	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidClientName),
		errors.Is(err, usecase.ErrEmptyQuoteItems),
		errors.Is(err, usecase.ErrInvalidItemQty),
		errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
