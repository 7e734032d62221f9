package interfaces

import (
	"context"

	"grafica_gestao/internal/domain/entities"
)

// The collection repositories all follow the same contract as the store they
// wrap: List returns the full collection (empty, never nil-for-missing) and
// SaveAll overwrites it. Every mutation in the use cases is a read-modify-write
// of the whole collection; there is no indexed update primitive.

//go:generate mockgen -source=collection_repository_interfaces.go -destination=mocks/mock_collection_repositories.go

type IProductRepository interface {
	List(ctx context.Context) ([]entities.Product, error)
	SaveAll(ctx context.Context, products []entities.Product) error
}

type IQuoteRepository interface {
	List(ctx context.Context) ([]entities.Quote, error)
	SaveAll(ctx context.Context, quotes []entities.Quote) error
}

type IProductionOrderRepository interface {
	List(ctx context.Context) ([]entities.ProductionOrder, error)
	SaveAll(ctx context.Context, orders []entities.ProductionOrder) error
}

type ICalendarEventRepository interface {
	List(ctx context.Context) ([]entities.CalendarEvent, error)
	SaveAll(ctx context.Context, events []entities.CalendarEvent) error
}

// ISessionRepository is the singleton session slot. Current returns the
// zero-value User when nobody is logged in.
type ISessionRepository interface {
	Current(ctx context.Context) (entities.User, error)
	Put(ctx context.Context, user entities.User) error
	Clear(ctx context.Context) error
}
