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
	ErrOrderNotFound      = errors.New("production order not found")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidOrderTitle  = errors.New("invalid order title")
	ErrInvalidOrderClient = errors.New("invalid order client name")
	ErrInvalidStage       = errors.New("invalid production stage")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrEmptyNoteText      = errors.New("note text is empty")
)

// CreateOrderInput carries the fields of a new O.S. (ordem de serviço).
type CreateOrderInput struct {
	QuoteID     string
	ClientName  string
	Title       string
	Priority    entities.Priority
	Deadline    time.Time
	Description string
	Items       []string
}

// StageColumn is one Kanban column: a stage plus the orders currently in it,
// in stored order.
type StageColumn struct {
	Stage  entities.ProductionStage   `json:"stage"`
	Orders []entities.ProductionOrder `json:"orders"`
}

// IProductionUseCase exposes the manufacturing side of the workflow.
//
//   - ChangeStage mirrors the quote model: unconditional overwrite, any stage
//     reachable from any other.
//   - AddNote appends to the order's thread; the thread is append-only and
//     chronological (oldest first). Empty text after trimming changes nothing.

type IProductionUseCase interface {
	ListOrders(ctx context.Context) ([]entities.ProductionOrder, error)
	CreateOrder(ctx context.Context, in CreateOrderInput) (entities.ProductionOrder, error)
	ChangeStage(ctx context.Context, orderID string, stage entities.ProductionStage) (entities.ProductionOrder, error)
	AddNote(ctx context.Context, orderID, text, author string) (entities.ProductionOrder, error)
	Board(ctx context.Context) ([]StageColumn, error)
}

type ProductionUseCase struct {
	repo interfaces.IProductionOrderRepository
}

var _ IProductionUseCase = (*ProductionUseCase)(nil)

func NewProductionUseCase(repo interfaces.IProductionOrderRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo}
}

func (u *ProductionUseCase) ListOrders(ctx context.Context) ([]entities.ProductionOrder, error) {
	return u.repo.List(ctx)
}

func (u *ProductionUseCase) CreateOrder(ctx context.Context, in CreateOrderInput) (entities.ProductionOrder, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.ClientName = strings.TrimSpace(in.ClientName)
	if in.Title == "" {
		return entities.ProductionOrder{}, ErrInvalidOrderTitle
	}
	if in.ClientName == "" {
		return entities.ProductionOrder{}, ErrInvalidOrderClient
	}
	if in.Priority == "" {
		in.Priority = entities.PriorityNormal
	}
	if !in.Priority.Valid() {
		return entities.ProductionOrder{}, ErrInvalidPriority
	}

	o := entities.ProductionOrder{
		ID:          uuid.NewString(),
		QuoteID:     strings.TrimSpace(in.QuoteID),
		ClientName:  in.ClientName,
		Title:       in.Title,
		Stage:       entities.StageAguardandoArte,
		Priority:    in.Priority,
		Deadline:    in.Deadline,
		Description: in.Description,
		Items:       append([]string(nil), in.Items...),
		Notes:       []entities.OrderNote{},
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.ProductionOrder{}, err
	}
	orders = append(orders, o)
	if err := u.repo.SaveAll(ctx, orders); err != nil {
		return entities.ProductionOrder{}, err
	}
	return o, nil
}

func (u *ProductionUseCase) ChangeStage(ctx context.Context, orderID string, stage entities.ProductionStage) (entities.ProductionOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ProductionOrder{}, ErrInvalidOrderID
	}
	if !stage.Valid() {
		return entities.ProductionOrder{}, ErrInvalidStage
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.ProductionOrder{}, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Stage = stage
			if err := u.repo.SaveAll(ctx, orders); err != nil {
				return entities.ProductionOrder{}, err
			}
			return orders[i], nil
		}
	}
	return entities.ProductionOrder{}, ErrOrderNotFound
}

func (u *ProductionUseCase) AddNote(ctx context.Context, orderID, text, author string) (entities.ProductionOrder, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.ProductionOrder{}, ErrInvalidOrderID
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.ProductionOrder{}, ErrEmptyNoteText
	}

	note := entities.OrderNote{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    strings.TrimSpace(author),
		CreatedAt: time.Now().UTC(),
	}

	orders, err := u.repo.List(ctx)
	if err != nil {
		return entities.ProductionOrder{}, err
	}
	for i := range orders {
		if orders[i].ID == orderID {
			orders[i].Notes = append(orders[i].Notes, note)
			if err := u.repo.SaveAll(ctx, orders); err != nil {
				return entities.ProductionOrder{}, err
			}
			return orders[i], nil
		}
	}
	return entities.ProductionOrder{}, ErrOrderNotFound
}

// Board partitions the orders into the six fixed columns. Every order lands
// in exactly one column and each column preserves stored order.
func (u *ProductionUseCase) Board(ctx context.Context) ([]StageColumn, error) {
	orders, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stages := entities.ProductionStages()
	columns := make([]StageColumn, len(stages))
	for i, s := range stages {
		columns[i] = StageColumn{Stage: s, Orders: []entities.ProductionOrder{}}
	}
	index := make(map[entities.ProductionStage]int, len(stages))
	for i, s := range stages {
		index[s] = i
	}
	for _, o := range orders {
		if i, ok := index[o.Stage]; ok {
			columns[i].Orders = append(columns[i].Orders, o)
		}
	}
	return columns, nil
}
