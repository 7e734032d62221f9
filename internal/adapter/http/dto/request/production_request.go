package request

import "time"

type CreateOrderRequest struct {
	QuoteID     string    `json:"quote_id"`
	ClientName  string    `json:"client_name" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Priority    string    `json:"priority"`
	Deadline    time.Time `json:"deadline"`
	Description string    `json:"description"`
	Items       []string  `json:"items"`
}

type ChangeStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// AddNoteRequest carries the note text. The author is taken from the
// authenticated session, not from the payload. Text is deliberately not
// required at binding level: the engine owns the empty-after-trim rule.
type AddNoteRequest struct {
	Text string `json:"text"`
}
