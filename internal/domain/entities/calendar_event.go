package entities

import "time"

// CalendarEvent is an agenda entry (installation visit, client meeting).
// It is independent of the quote/production lifecycle.
type CalendarEvent struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}
