package repository

import (
	"context"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"
)

// The per-entity repositories are thin views over the collection store; each
// owns one logical key. List never returns a nil slice for a missing or
// corrupt collection.

type ProductDynamoRepository struct {
	store *CollectionStore
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(store *CollectionStore) *ProductDynamoRepository {
	return &ProductDynamoRepository{store: store}
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	products := []entities.Product{}
	if err := r.store.Load(ctx, collectionProducts, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductDynamoRepository) SaveAll(ctx context.Context, products []entities.Product) error {
	return r.store.Save(ctx, collectionProducts, products)
}

type QuoteDynamoRepository struct {
	store *CollectionStore
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(store *CollectionStore) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{store: store}
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	quotes := []entities.Quote{}
	if err := r.store.Load(ctx, collectionQuotes, &quotes); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (r *QuoteDynamoRepository) SaveAll(ctx context.Context, quotes []entities.Quote) error {
	return r.store.Save(ctx, collectionQuotes, quotes)
}

type ProductionOrderDynamoRepository struct {
	store *CollectionStore
}

var _ interfaces.IProductionOrderRepository = (*ProductionOrderDynamoRepository)(nil)

func NewProductionOrderDynamoRepository(store *CollectionStore) *ProductionOrderDynamoRepository {
	return &ProductionOrderDynamoRepository{store: store}
}

func (r *ProductionOrderDynamoRepository) List(ctx context.Context) ([]entities.ProductionOrder, error) {
	orders := []entities.ProductionOrder{}
	if err := r.store.Load(ctx, collectionOrders, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *ProductionOrderDynamoRepository) SaveAll(ctx context.Context, orders []entities.ProductionOrder) error {
	return r.store.Save(ctx, collectionOrders, orders)
}

type CalendarEventDynamoRepository struct {
	store *CollectionStore
}

var _ interfaces.ICalendarEventRepository = (*CalendarEventDynamoRepository)(nil)

func NewCalendarEventDynamoRepository(store *CollectionStore) *CalendarEventDynamoRepository {
	return &CalendarEventDynamoRepository{store: store}
}

func (r *CalendarEventDynamoRepository) List(ctx context.Context) ([]entities.CalendarEvent, error) {
	events := []entities.CalendarEvent{}
	if err := r.store.Load(ctx, collectionEvents, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *CalendarEventDynamoRepository) SaveAll(ctx context.Context, events []entities.CalendarEvent) error {
	return r.store.Save(ctx, collectionEvents, events)
}

// SessionDynamoRepository holds the singleton session record. The slot is
// cleared by deleting the item, so Current reads the zero User when nobody
// is logged in.

type SessionDynamoRepository struct {
	store *CollectionStore
}

var _ interfaces.ISessionRepository = (*SessionDynamoRepository)(nil)

func NewSessionDynamoRepository(store *CollectionStore) *SessionDynamoRepository {
	return &SessionDynamoRepository{store: store}
}

func (r *SessionDynamoRepository) Current(ctx context.Context) (entities.User, error) {
	user := entities.User{}
	if err := r.store.Load(ctx, collectionSession, &user); err != nil {
		return entities.User{}, err
	}
	return user, nil
}

func (r *SessionDynamoRepository) Put(ctx context.Context, user entities.User) error {
	return r.store.Save(ctx, collectionSession, user)
}

func (r *SessionDynamoRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, collectionSession)
}
