package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"grafica_gestao/internal/domain/entities"
	"grafica_gestao/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrEventNotFound     = errors.New("calendar event not found")
	ErrInvalidEventID    = errors.New("invalid event id")
	ErrInvalidEventTitle = errors.New("invalid event title")
	ErrInvalidEventDate  = errors.New("invalid event date")
)

// icsEventDuration is the fixed slot length of an exported event. The agenda
// stores only a start instant; exports always close the slot one hour later.
const icsEventDuration = time.Hour

type IScheduleUseCase interface {
	ListEvents(ctx context.Context) ([]entities.CalendarEvent, error)
	AddEvent(ctx context.Context, title string, date time.Time, description string) (entities.CalendarEvent, error)
	ExportICS(ctx context.Context, eventID string) (string, error)
}

type ScheduleUseCase struct {
	repo interfaces.ICalendarEventRepository
}

var _ IScheduleUseCase = (*ScheduleUseCase)(nil)

func NewScheduleUseCase(repo interfaces.ICalendarEventRepository) *ScheduleUseCase {
	return &ScheduleUseCase{repo: repo}
}

func (u *ScheduleUseCase) ListEvents(ctx context.Context) ([]entities.CalendarEvent, error) {
	return u.repo.List(ctx)
}

func (u *ScheduleUseCase) AddEvent(ctx context.Context, title string, date time.Time, description string) (entities.CalendarEvent, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.CalendarEvent{}, ErrInvalidEventTitle
	}
	if date.IsZero() {
		return entities.CalendarEvent{}, ErrInvalidEventDate
	}

	e := entities.CalendarEvent{
		ID:          uuid.NewString(),
		Title:       title,
		Date:        date,
		Description: strings.TrimSpace(description),
	}

	events, err := u.repo.List(ctx)
	if err != nil {
		return entities.CalendarEvent{}, err
	}
	events = append(events, e)
	if err := u.repo.SaveAll(ctx, events); err != nil {
		return entities.CalendarEvent{}, err
	}
	return e, nil
}

// ExportICS renders one event as a minimal VCALENDAR document: a single
// VEVENT with a fixed one-hour duration. The field set and the +1h DTEND rule
// are part of the external contract and must not change.
func (u *ScheduleUseCase) ExportICS(ctx context.Context, eventID string) (string, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return "", ErrInvalidEventID
	}

	events, err := u.repo.List(ctx)
	if err != nil {
		return "", err
	}
	for _, e := range events {
		if e.ID == eventID {
			return renderICS(e, time.Now().UTC()), nil
		}
	}
	return "", ErrEventNotFound
}

const icsTimestampLayout = "20060102T150405Z"

func renderICS(e entities.CalendarEvent, stamp time.Time) string {
	start := e.Date.UTC()
	end := start.Add(icsEventDuration)

	var b strings.Builder
	b.WriteString("BEGIN:VCALENDAR\n")
	b.WriteString("VERSION:2.0\n")
	b.WriteString("PRODID:-//GraficaGestao//NONSGML v1.0//EN\n")
	b.WriteString("BEGIN:VEVENT\n")
	fmt.Fprintf(&b, "UID:%s@grafica.local\n", e.ID)
	fmt.Fprintf(&b, "DTSTAMP:%s\n", stamp.UTC().Format(icsTimestampLayout))
	fmt.Fprintf(&b, "DTSTART:%s\n", start.Format(icsTimestampLayout))
	fmt.Fprintf(&b, "DTEND:%s\n", end.Format(icsTimestampLayout))
	fmt.Fprintf(&b, "SUMMARY:%s\n", e.Title)
	fmt.Fprintf(&b, "DESCRIPTION:%s\n", e.Description)
	b.WriteString("END:VEVENT\n")
	b.WriteString("END:VCALENDAR")
	return b.String()
}
