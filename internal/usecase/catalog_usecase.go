package usecase

import (
	"context"
	"errors"
	"strings"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidProductName = errors.New("invalid product name")
	ErrInvalidProductUnit = errors.New("invalid product unit")
	ErrInvalidMoneyValue  = errors.New("invalid money value")
)

// ICatalogUseCase manages the product catalog. Entries are append-only:
// there is no edit or delete, because quotes snapshot prices at add-time and
// the catalog history must stay coherent with them.

type ICatalogUseCase interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	AddProduct(ctx context.Context, name, unit string, price, cost float64) (entities.Product, error)
}

type CatalogUseCase struct {
	repo interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.repo.List(ctx)
}

func (u *CatalogUseCase) AddProduct(ctx context.Context, name, unit string, price, cost float64) (entities.Product, error) {
	name = strings.TrimSpace(name)
	unit = strings.TrimSpace(unit)
	if name == "" {
		return entities.Product{}, ErrInvalidProductName
	}
	if unit == "" {
		return entities.Product{}, ErrInvalidProductUnit
	}
	if price < 0 || cost < 0 {
		return entities.Product{}, ErrInvalidMoneyValue
	}

	p := entities.Product{
		ID:    uuid.NewString(),
		Name:  name,
		Unit:  unit,
		Price: price,
		Cost:  cost,
	}

	products, err := u.repo.List(ctx)
	if err != nil {
		return entities.Product{}, err
	}
	products = append(products, p)
	if err := u.repo.SaveAll(ctx, products); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}
