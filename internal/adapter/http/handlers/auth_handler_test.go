package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"grafica_gestao/internal/adapter/http/handlers/mocks"
	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns token and user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, observability.NewMetrics())

		uc.EXPECT().Login(gomock.Any(), "admin@gestao.com", "admin").Return(
			entities.User{ID: "1", Name: "Wesley Oliveira", Email: "admin@gestao.com", Role: entities.RoleAdmin},
			"signed-token",
			nil,
		)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		body := `{"email":"admin@gestao.com","password":"admin"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["access_token"] != "signed-token" {
			t.Fatalf("unexpected token: %v", resp["access_token"])
		}
		user, _ := resp["user"].(map[string]any)
		if user["name"] != "Wesley Oliveira" || user["role"] != "admin" {
			t.Fatalf("unexpected user payload: %+v", user)
		}
	})

	t.Run("bad credentials map to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, observability.NewMetrics())

		uc.EXPECT().Login(gomock.Any(), "admin@gestao.com", "wrong").
			Return(entities.User{}, "", usecase.ErrInvalidCredentials)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		body := `{"email":"admin@gestao.com","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, observability.NewMetrics())

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"email":"admin@gestao.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no session maps to 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc, observability.NewMetrics())

		uc.EXPECT().CurrentUser(gomock.Any()).Return(entities.User{}, usecase.ErrNotLoggedIn)

		r := gin.New()
		r.GET("/v1/auth/me", h.Me)

		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing header aborts with 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		r := gin.New()
		r.GET("/v1/secret", RequireAuth(uc), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/secret", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("invalid token aborts with 401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		uc.EXPECT().ValidateAccessToken("bad").Return(nil, usecase.ErrInvalidToken)

		r := gin.New()
		r.GET("/v1/secret", RequireAuth(uc), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/secret", nil)
		req.Header.Set("Authorization", "Bearer bad")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token exposes claims to handlers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAuthUseCase(ctrl)

		uc.EXPECT().ValidateAccessToken("good").Return(&usecase.AccessClaims{
			Name:  "Wesley Oliveira",
			Email: "admin@gestao.com",
			Role:  "admin",
		}, nil)

		r := gin.New()
		r.GET("/v1/secret", RequireAuth(uc), func(c *gin.Context) {
			c.String(http.StatusOK, AuthenticatedUserName(c))
		})

		req := httptest.NewRequest(http.MethodGet, "/v1/secret", nil)
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "Wesley Oliveira" {
			t.Fatalf("expected claim name in context, got %q", w.Body.String())
		}
	})
}
