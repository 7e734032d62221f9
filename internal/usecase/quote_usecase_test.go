package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"grafica_gestao/internal/domain/entities"
	mock_interfaces "grafica_gestao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	t.Run("invalid client name", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.CreateQuote(context.Background(), "   ", []entities.QuoteItem{{Quantity: 1}})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("empty items", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.CreateQuote(context.Background(), "Maria", nil)
		if !errors.Is(err, ErrEmptyQuoteItems) {
			t.Fatalf("expected ErrEmptyQuoteItems, got %v", err)
		}
	})

	t.Run("non positive quantity", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.CreateQuote(context.Background(), "Maria", []entities.QuoteItem{{ProductID: "p1", Quantity: 0}})
		if !errors.Is(err, ErrInvalidItemQty) {
			t.Fatalf("expected ErrInvalidItemQty, got %v", err)
		}
	})

	t.Run("create success prepends and prices", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		existing := entities.Quote{ID: "old", ClientName: "Padaria do João"}
		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{existing}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, quotes []entities.Quote) error {
				if len(quotes) != 2 {
					t.Fatalf("expected 2 quotes, got %d", len(quotes))
				}
				if quotes[0].ClientName != "Maria" {
					t.Fatalf("expected new quote first, got %+v", quotes[0])
				}
				if quotes[1].ID != "old" {
					t.Fatalf("expected existing quote preserved, got %+v", quotes[1])
				}
				return nil
			},
		)

		items := []entities.QuoteItem{
			{ID: "a1", ProductID: "p1", ProductName: "Lona Frontlight 440g", Quantity: 3, UnitPrice: 85, Total: 1},
		}
		q, err := uc.CreateQuote(context.Background(), "  Maria  ", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if q.ID == "" {
			t.Fatalf("expected generated quote id")
		}
		if q.ClientName != "Maria" {
			t.Fatalf("expected trimmed client name, got %q", q.ClientName)
		}
		if q.Status != entities.QuoteStatusEmAberto {
			t.Fatalf("expected Em Aberto, got %q", q.Status)
		}
		// Line totals are recomputed server-side: 3 x 85, not the bogus 1.
		if q.Items[0].Total != 255 || q.Total != 255 {
			t.Fatalf("expected total 255, got item=%v quote=%v", q.Items[0].Total, q.Total)
		}
		if got := q.ValidUntil.Sub(q.CreatedAt); got != 7*24*time.Hour {
			t.Fatalf("expected 7 day validity, got %v", got)
		}
	})

	t.Run("repo list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.CreateQuote(context.Background(), "Maria", []entities.QuoteItem{{ProductID: "p1", Quantity: 1}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuoteUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQuoteID) {
			t.Fatalf("expected ErrInvalidQuoteID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		_, err := uc.GetByID(context.Background(), "q-1")
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1", ClientName: "Maria"}}, nil)

		q, err := uc.GetByID(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ClientName != "Maria" {
			t.Fatalf("unexpected quote: %+v", q)
		}
	})
}

func TestQuoteUseCase_ChangeStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewQuoteUseCase(nil)
		_, err := uc.ChangeStatus(context.Background(), "q-1", "Pendente")
		if !errors.Is(err, ErrInvalidQuoteStatus) {
			t.Fatalf("expected ErrInvalidQuoteStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{}, nil)

		_, err := uc.ChangeStatus(context.Background(), "q-1", entities.QuoteStatusAprovado)
		if !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})

	t.Run("any status is reachable from any other", func(t *testing.T) {
		from := entities.QuoteStatuses()
		to := entities.QuoteStatuses()
		for _, src := range from {
			for _, dst := range to {
				ctrl := gomock.NewController(t)
				repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
				uc := NewQuoteUseCase(repo)

				repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1", Status: src}}, nil)
				repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(nil)

				q, err := uc.ChangeStatus(context.Background(), "q-1", dst)
				if err != nil {
					t.Fatalf("%s -> %s: unexpected error %v", src, dst, err)
				}
				if q.Status != dst {
					t.Fatalf("%s -> %s: status not applied, got %q", src, dst, q.Status)
				}
				ctrl.Finish()
			}
		}
	})

	t.Run("save error surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuoteRepository(ctrl)
		uc := NewQuoteUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return([]entities.Quote{{ID: "q-1"}}, nil)
		repo.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(errors.New("db"))

		_, err := uc.ChangeStatus(context.Background(), "q-1", entities.QuoteStatusCancelado)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
