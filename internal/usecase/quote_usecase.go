package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound      = errors.New("quote not found")
	ErrInvalidQuoteID     = errors.New("invalid quote id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrEmptyQuoteItems    = errors.New("quote has no items")
	ErrInvalidItemQty     = errors.New("invalid item quantity")
	ErrInvalidQuoteStatus = errors.New("invalid quote status")
)

const quoteValidityDays = 7

// IQuoteUseCase exposes the commercial quote lifecycle.
//
//   - CreateQuote validates, prices and stores a new quote at the top of the
//     collection (the list reads most-recent-first).
//   - ChangeStatus overwrites the status unconditionally; every status is
//     reachable from every other one.

type IQuoteUseCase interface {
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	CreateQuote(ctx context.Context, clientName string, items []entities.QuoteItem) (entities.Quote, error)
	ChangeStatus(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quotes, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, clientName string, items []entities.QuoteItem) (entities.Quote, error) {
	clientName = strings.TrimSpace(clientName)
	if clientName == "" {
		return entities.Quote{}, ErrInvalidClientName
	}
	if len(items) == 0 {
		return entities.Quote{}, ErrEmptyQuoteItems
	}

	// Line totals are recomputed here; the stored quote never trusts totals
	// sent by the caller.
	priced := make([]entities.QuoteItem, len(items))
	for i, it := range items {
		if it.Quantity <= 0 {
			return entities.Quote{}, ErrInvalidItemQty
		}
		it.Total = float64(it.Quantity) * it.UnitPrice
		if it.ID == "" {
			it.ID = uuid.NewString()
		}
		priced[i] = it
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:         uuid.NewString(),
		ClientName: clientName,
		Items:      priced,
		Total:      entities.ItemsTotal(priced),
		Status:     entities.QuoteStatusEmAberto,
		CreatedAt:  now,
		ValidUntil: now.AddDate(0, 0, quoteValidityDays),
	}

	quotes, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	quotes = append([]entities.Quote{q}, quotes...)
	if err := u.repo.SaveAll(ctx, quotes); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (u *QuoteUseCase) ChangeStatus(ctx context.Context, quoteID string, status entities.QuoteStatus) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}

	quotes, err := u.repo.List(ctx)
	if err != nil {
		return entities.Quote{}, err
	}
	for i := range quotes {
		if quotes[i].ID == quoteID {
			quotes[i].Status = status
			if err := u.repo.SaveAll(ctx, quotes); err != nil {
				return entities.Quote{}, err
			}
			return quotes[i], nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}
