package handlers

import (
	"bytes"
	"context"
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

func TestProductionHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		r := gin.New()
		r.POST("/v1/production/orders", h.CreateOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/production/orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateOrderInput) (entities.ProductionOrder, error) {
				if in.Title != "Fachada completa" || in.ClientName != "Padaria do João" {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.ProductionOrder{
					ID:         "o-1",
					ClientName: in.ClientName,
					Title:      in.Title,
					Stage:      entities.StageAguardandoArte,
					Priority:   entities.PriorityUrgente,
				}, nil
			},
		)

		r := gin.New()
		r.POST("/v1/production/orders", h.CreateOrder)

		body := `{"client_name":"Padaria do João","title":"Fachada completa","priority":"Urgente"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/production/orders", bytes.NewBufferString(body))
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
		if resp["stage"] != string(entities.StageAguardandoArte) {
			t.Fatalf("expected first stage, got %v", resp["stage"])
		}
	})
}

func TestProductionHandler_ChangeStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown stage maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		uc.EXPECT().ChangeStage(gomock.Any(), "o-1", entities.ProductionStage("Expedição")).
			Return(entities.ProductionOrder{}, usecase.ErrInvalidStage)

		r := gin.New()
		r.PATCH("/v1/production/orders/:id/stage", h.ChangeStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/production/orders/o-1/stage", bytes.NewBufferString(`{"stage":"Expedição"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing order maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		uc.EXPECT().ChangeStage(gomock.Any(), "o-404", entities.StagePronto).
			Return(entities.ProductionOrder{}, usecase.ErrOrderNotFound)

		r := gin.New()
		r.PATCH("/v1/production/orders/:id/stage", h.ChangeStage)

		req := httptest.NewRequest(http.MethodPatch, "/v1/production/orders/o-404/stage", bytes.NewBufferString(`{"stage":"Pronto"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestProductionHandler_AddNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("author comes from the authenticated session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		uc.EXPECT().AddNote(gomock.Any(), "o-1", "material chegou", "Wesley Oliveira").
			Return(entities.ProductionOrder{ID: "o-1"}, nil)

		r := gin.New()
		r.POST("/v1/production/orders/:id/notes", func(c *gin.Context) {
			c.Set("auth.user.name", "Wesley Oliveira")
			h.AddNote(c)
		})

		req := httptest.NewRequest(http.MethodPost, "/v1/production/orders/o-1/notes", bytes.NewBufferString(`{"text":"material chegou"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("blank text maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIProductionUseCase(ctrl)
		h := NewProductionHandler(uc, observability.NewMetrics())

		uc.EXPECT().AddNote(gomock.Any(), "o-1", "   ", gomock.Any()).
			Return(entities.ProductionOrder{}, usecase.ErrEmptyNoteText)

		r := gin.New()
		r.POST("/v1/production/orders/:id/notes", h.AddNote)

		req := httptest.NewRequest(http.MethodPost, "/v1/production/orders/o-1/notes", bytes.NewBufferString(`{"text":"   "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestProductionHandler_Board(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIProductionUseCase(ctrl)
	h := NewProductionHandler(uc, observability.NewMetrics())

	uc.EXPECT().Board(gomock.Any()).Return([]usecase.StageColumn{
		{Stage: entities.StageAguardandoArte, Orders: []entities.ProductionOrder{{ID: "o-1", Stage: entities.StageAguardandoArte}}},
		{Stage: entities.StageEmCriacao, Orders: []entities.ProductionOrder{}},
	}, nil)

	r := gin.New()
	r.GET("/v1/production/board", h.Board)

	req := httptest.NewRequest(http.MethodGet, "/v1/production/board", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response: %v", err)
	}
	if len(resp) != 2 || resp[0]["count"] != 1.0 || resp[1]["count"] != 0.0 {
		t.Fatalf("unexpected board payload: %+v", resp)
	}
}
