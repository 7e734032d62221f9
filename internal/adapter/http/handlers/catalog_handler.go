package handlers

import (
	"errors"
	"net/http"

	request "grafica_gestao/internal/adapter/http/dto/request"
	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProductPayload = pkg.NewDomainErrorSimple("INVALID_PRODUCT_INPUT", "Invalid product payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListProducts godoc
// @Summary List catalog products
// @Tags catalog
// @Produce json
// @Success 200 {array} response.ProductResponse
// @Router /v1/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// AddProduct godoc
// @Summary Add a catalog product
// @Tags catalog
// @Accept json
// @Produce json
// @Param product body request.AddProductRequest true "Product payload"
// @Success 201 {object} response.ProductResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/products [post]
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var payload request.AddProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProductPayload.HTTPStatus, errInvalidProductPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.AddProduct(c.Request.Context(), payload.Name, payload.Unit, payload.Price, payload.Cost)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidProductUnit),
		errors.Is(err, usecase.ErrInvalidMoneyValue):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
