package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "grafica_gestao/internal/adapter/http/dto/request"
	response "grafica_gestao/internal/adapter/http/dto/response"
	"grafica_gestao/internal/usecase"
	"grafica_gestao/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
)

// ScheduleHandler handles HTTP requests for delivery calendar events.
type ScheduleHandler struct {
	usecase usecase.IScheduleUseCase
}

func NewScheduleHandler(uc usecase.IScheduleUseCase) *ScheduleHandler {
	return &ScheduleHandler{usecase: uc}
}

// ListEvents godoc
// @Summary List calendar events
// @Tags schedule
// @Produce json
// @Success 200 {array} response.CalendarEventResponse
// @Router /v1/events [get]
func (h *ScheduleHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListEvents(c.Request.Context())
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarEvents(events))
}

// AddEvent godoc
// @Summary Add a calendar event
// @Tags schedule
// @Accept json
// @Produce json
// @Param event body request.AddEventRequest true "Event payload"
// @Success 201 {object} response.CalendarEventResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/events [post]
func (h *ScheduleHandler) AddEvent(c *gin.Context) {
	var payload request.AddEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	event, err := h.usecase.AddEvent(c.Request.Context(), payload.Title, payload.Date, payload.Description)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCalendarEvent(event))
}

// ExportICS godoc
// @Summary Export an event as an iCalendar file
// @Description Returns a one-hour VCALENDAR document as a downloadable .ics attachment
// @Tags schedule
// @Produce text/calendar
// @Param id path string true "Event ID"
// @Success 200 {string} string "VCALENDAR document"
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/events/{id}/ics [get]
func (h *ScheduleHandler) ExportICS(c *gin.Context) {
	eventID := c.Param("id")

	ics, err := h.usecase.ExportICS(c.Request.Context(), eventID)
	if err != nil {
		appErr := mapScheduleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=evento-%s.ics", eventID))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func mapScheduleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventID),
		errors.Is(err, usecase.ErrInvalidEventTitle),
		errors.Is(err, usecase.ErrInvalidEventDate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Calendar event not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
