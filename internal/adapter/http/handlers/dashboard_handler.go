package handlers

import (
	"net/http"

	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the landing-page tallies.
type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// Summary godoc
// @Summary Dashboard summary
// @Description Revenue, open-quote and in-production tallies computed from the quote list
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.DashboardResponse
// @Router /v1/dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.usecase.Summary(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardSummary(summary))
}
