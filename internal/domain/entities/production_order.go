package entities

import "time"

// ProductionStage is the position of an order on the production board.
//
// The constants below define the Kanban columns, left to right. Like
// QuoteStatus, moves are unrestricted: the board exposes every stage as a
// target at all times and the engine does not enforce forward-only flow.
type ProductionStage string

const (
	StageAguardandoArte   ProductionStage = "Aguardando Arte"
	StageEmCriacao        ProductionStage = "Em Criação"
	StageAprovacaoCliente ProductionStage = "Aprovação Cliente"
	StageFilaDeImpressao  ProductionStage = "Fila de Impressão"
	StageAcabamento       ProductionStage = "Acabamento"
	StagePronto           ProductionStage = "Pronto"
)

// ProductionStages lists the board columns in display order.
func ProductionStages() []ProductionStage {
	return []ProductionStage{
		StageAguardandoArte,
		StageEmCriacao,
		StageAprovacaoCliente,
		StageFilaDeImpressao,
		StageAcabamento,
		StagePronto,
	}
}

func (s ProductionStage) Valid() bool {
	switch s {
	case StageAguardandoArte, StageEmCriacao, StageAprovacaoCliente,
		StageFilaDeImpressao, StageAcabamento, StagePronto:
		return true
	}
	return false
}

// Priority groups orders visually on the board. The engine attaches no
// numeric ordering to it.
type Priority string

const (
	PriorityBaixa   Priority = "Baixa"
	PriorityNormal  Priority = "Normal"
	PriorityAlta    Priority = "Alta"
	PriorityUrgente Priority = "Urgente"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityBaixa, PriorityNormal, PriorityAlta, PriorityUrgente:
		return true
	}
	return false
}

// OrderNote is one entry of an order's comment thread. Notes are immutable
// once created and the thread is append-only, oldest first.
type OrderNote struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductionOrder is a manufacturing work item (O.S.) tracked across the
// board from art to delivery. QuoteID links back to the originating quote
// when there is one; Items are display labels, not priced lines.
type ProductionOrder struct {
	ID          string          `json:"id"`
	QuoteID     string          `json:"quote_id,omitempty"`
	ClientName  string          `json:"client_name"`
	Title       string          `json:"title"`
	Stage       ProductionStage `json:"stage"`
	Priority    Priority        `json:"priority"`
	Deadline    time.Time       `json:"deadline"`
	Description string          `json:"description"`
	Items       []string        `json:"items"`
	Notes       []OrderNote     `json:"notes"`
}
