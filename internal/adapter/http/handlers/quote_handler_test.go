package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"grafica_gestao/internal/adapter/http/handlers/mocks"
	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/infrastructure/observability"
	"grafica_gestao/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success snapshots from catalog", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		catalog.EXPECT().ListProducts(gomock.Any()).Return([]entities.Product{
			{ID: "p1", Name: "Lona Frontlight 440g", Unit: "m²", Price: 85},
		}, nil)

		uc.EXPECT().CreateQuote(gomock.Any(), "Maria", gomock.Any()).DoAndReturn(
			func(_ context.Context, clientName string, items []entities.QuoteItem) (entities.Quote, error) {
				if len(items) != 1 || items[0].Quantity != 3 || items[0].UnitPrice != 85 {
					t.Fatalf("unexpected cart: %+v", items)
				}
				return entities.Quote{
					ID:         "q-1",
					ClientName: clientName,
					Items:      items,
					Total:      255,
					Status:     entities.QuoteStatusEmAberto,
					CreatedAt:  time.Now().UTC(),
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"client_name":"Maria","items":[{"product_id":"p1","quantity":3}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response: %v", err)
		}
		if resp["total"] != 255.0 {
			t.Fatalf("expected total 255, got %v", resp["total"])
		}
		share, _ := resp["share_text"].(string)
		if share != "Olá Maria, aqui está seu orçamento #q-1 no valor de R$ 255.00. Itens: Lona Frontlight 440g." {
			t.Fatalf("unexpected share text: %q", share)
		}
	})

	t.Run("usecase validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		catalog.EXPECT().ListProducts(gomock.Any()).Return([]entities.Product{}, nil)
		uc.EXPECT().CreateQuote(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Quote{}, usecase.ErrEmptyQuoteItems)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		body := `{"client_name":"Maria","items":[{"product_id":"missing","quantity":1}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		uc.EXPECT().GetByID(gomock.Any(), "q-404").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-404", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("internal error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		uc.EXPECT().GetByID(gomock.Any(), "q-1").Return(entities.Quote{}, errors.New("db"))

		r := gin.New()
		r.GET("/v1/quotes/:id", h.GetQuote)

		req := httptest.NewRequest(http.MethodGet, "/v1/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ChangeQuoteStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("status applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		uc.EXPECT().ChangeStatus(gomock.Any(), "q-1", entities.QuoteStatusAprovado).
			Return(entities.Quote{ID: "q-1", ClientName: "Maria", Status: entities.QuoteStatusAprovado}, nil)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/status", h.ChangeQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"Aprovado"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("unknown status maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		catalog := mocks.NewMockICatalogUseCase(ctrl)
		h := NewQuoteHandler(uc, catalog, observability.NewMetrics())

		uc.EXPECT().ChangeStatus(gomock.Any(), "q-1", entities.QuoteStatus("Pendente")).
			Return(entities.Quote{}, usecase.ErrInvalidQuoteStatus)

		r := gin.New()
		r.PATCH("/v1/quotes/:id/status", h.ChangeQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"Pendente"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
