package response

import (
	"time"

	"grafica_gestao/internal/domain/entities"
)

type CalendarEventResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
}

func FromCalendarEvent(e entities.CalendarEvent) CalendarEventResponse {
	return CalendarEventResponse{ID: e.ID, Title: e.Title, Date: e.Date, Description: e.Description}
}

func FromCalendarEvents(events []entities.CalendarEvent) []CalendarEventResponse {
	out := make([]CalendarEventResponse, len(events))
	for i, e := range events {
		out[i] = FromCalendarEvent(e)
	}
	return out
}
