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
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid production order payload", http.StatusBadRequest)
)

// ProductionHandler handles HTTP requests for the production Kanban.
type ProductionHandler struct {
	usecase usecase.IProductionUseCase
	metrics *observability.Metrics
}

func NewProductionHandler(uc usecase.IProductionUseCase, metrics *observability.Metrics) *ProductionHandler {
	return &ProductionHandler{usecase: uc, metrics: metrics}
}

// ListOrders godoc
// @Summary List production orders
// @Tags production
// @Produce json
// @Success 200 {array} response.ProductionOrderResponse
// @Router /v1/production/orders [get]
func (h *ProductionHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListOrders(c.Request.Context())
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductionOrders(orders))
}

// Board godoc
// @Summary Production board
// @Description Returns the six Kanban columns with every order in its current stage
// @Tags production
// @Produce json
// @Success 200 {array} response.BoardColumnResponse
// @Router /v1/production/board [get]
func (h *ProductionHandler) Board(c *gin.Context) {
	columns, err := h.usecase.Board(c.Request.Context())
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBoard(columns))
}

// CreateOrder godoc
// @Summary Create a production order
// @Description New orders always enter at the first stage
// @Tags production
// @Accept json
// @Produce json
// @Param order body request.CreateOrderRequest true "Order payload"
// @Success 201 {object} response.ProductionOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/production/orders [post]
func (h *ProductionHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), usecase.CreateOrderInput{
		QuoteID:     payload.QuoteID,
		ClientName:  payload.ClientName,
		Title:       payload.Title,
		Priority:    entities.Priority(payload.Priority),
		Deadline:    payload.Deadline,
		Description: payload.Description,
		Items:       payload.Items,
	})
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProductionOrder(order))
}

// ChangeStage godoc
// @Summary Move an order to another stage
// @Description Any stage can be reached from any other stage
// @Tags production
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param stage body request.ChangeStageRequest true "Target stage"
// @Success 200 {object} response.ProductionOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/production/orders/{id}/stage [patch]
func (h *ProductionHandler) ChangeStage(c *gin.Context) {
	var payload request.ChangeStageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.ChangeStage(c.Request.Context(), c.Param("id"), entities.ProductionStage(payload.Stage))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.OrderStageMoved(payload.Stage)
	c.JSON(http.StatusOK, response.FromProductionOrder(order))
}

// AddNote godoc
// @Summary Add a note to an order
// @Description The note author is the authenticated user
// @Tags production
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param note body request.AddNoteRequest true "Note text"
// @Success 200 {object} response.ProductionOrderResponse
// @Failure 400 {object} pkg.HTTPError
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/production/orders/{id}/notes [post]
func (h *ProductionHandler) AddNote(c *gin.Context) {
	var payload request.AddNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.AddNote(c.Request.Context(), c.Param("id"), payload.Text, AuthenticatedUserName(c))
	if err != nil {
		appErr := mapProductionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	h.metrics.OrderNoteAdded()
	c.JSON(http.StatusOK, response.FromProductionOrder(order))
}

func mapProductionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderTitle),
		errors.Is(err, usecase.ErrInvalidOrderClient),
		errors.Is(err, usecase.ErrInvalidStage),
		errors.Is(err, usecase.ErrInvalidPriority),
		errors.Is(err, usecase.ErrEmptyNoteText):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Production order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
