package handlers

import (
	"errors"
	"net/http"

	request "grafica_gestao/internal/adapter/http/dto/request"
	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)
)

// AuthHandler handles login, logout and the current-session lookup.
type AuthHandler struct {
	usecase usecase.IAuthUseCase
	metrics *observability.Metrics
}

func NewAuthHandler(uc usecase.IAuthUseCase, metrics *observability.Metrics) *AuthHandler {
	return &AuthHandler{usecase: uc, metrics: metrics}
}

// Login godoc
// @Summary Log in
// @Description Checks the credentials and returns a bearer token plus the session user
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	user, token, err := h.usecase.Login(c.Request.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			h.metrics.LoginRejected()
		}
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: token,
		User:        response.FromUser(user),
	})
}

// Logout godoc
// @Summary Log out
// @Description Clears the server-side session slot
// @Tags auth
// @Produce json
// @Success 204
// @Router /v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.usecase.Logout(c.Request.Context()); err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current session user
// @Tags auth
// @Produce json
// @Success 200 {object} response.UserResponse
// @Failure 401 {object} pkg.HTTPError
// @Router /v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.usecase.CurrentUser(c.Request.Context())
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(user))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotLoggedIn):
		return pkg.NewDomainErrorSimple("NOT_LOGGED_IN", "No active session", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidToken):
		return pkg.NewDomainErrorSimple("INVALID_TOKEN", "Invalid access token", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
