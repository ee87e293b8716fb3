package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/api/metrics"
	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

type EventHandler struct {
	eventService ports.EventService
}

func NewEventHandler(eventService ports.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// Create registers a new event owned by the caller.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event payload"
// @Success      201   {object}  envelope{data=domain.Event}
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /events [post]
func (h *EventHandler) Create(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	event, err := h.eventService.Create(c.Request().Context(), identity.UserID, ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Status:      domain.EventStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.EventsCreatedTotal.WithLabelValues(string(event.Status)).Inc()
	return respond(c, http.StatusCreated, "Event created successfully", event)
}

// List returns events with search, status filtering and pagination.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        query   query  string  false  "Substring search over title and location"
// @Param        status  query  string  false  "Status filter (DRAFT, PUBLISHED, CANCELLED)"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  envelope{data=[]domain.Event}
// @Failure      404  {object}  errorResponse
// @Router       /events [get]
func (h *EventHandler) List(c echo.Context) error {
	filter := ports.EventFilter{
		Query:  c.QueryParam("query"),
		Status: domain.EventStatus(c.QueryParam("status")),
	}

	opts := paginationOptions(c)
	events, total, err := h.eventService.List(c.Request().Context(), filter, opts)
	if err != nil {
		return err
	}

	return respondPage(c, http.StatusOK, "Events retrieved successfully", pageMeta(opts, total), events)
}

// MyEvents returns the caller's own events, paginated.
//
// @Summary      List own events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        page   query  int  false  "Page number"
// @Param        limit  query  int  false  "Page size"
// @Success      200  {object}  envelope{data=[]domain.Event}
// @Failure      401  {object}  errorResponse
// @Router       /events/my-events [get]
func (h *EventHandler) MyEvents(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	opts := paginationOptions(c)
	events, total, err := h.eventService.ListByOwner(c.Request().Context(), identity.UserID, opts)
	if err != nil {
		return err
	}

	return respondPage(c, http.StatusOK, "Events retrieved successfully", pageMeta(opts, total), events)
}

// Get returns a single event.
//
// @Summary      Get event by id
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  envelope{data=domain.Event}
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.eventService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Event retrieved successfully", event)
}

// Update applies a partial update under the owner-or-admin rule.
//
// @Summary      Update event by id
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Event update"
// @Success      200   {object}  envelope{data=domain.Event}
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /events/{id} [patch]
func (h *EventHandler) Update(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	update := ports.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		update.Status = &status
	}

	event, err := h.eventService.Update(c.Request().Context(), identity.UserID, identity.Role, c.Param("id"), update)
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Event updated successfully", event)
}

// Delete removes an event under the owner-or-admin rule.
//
// @Summary      Delete event by id
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  envelope
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	identity, err := requireIdentity(c)
	if err != nil {
		return err
	}

	if err := h.eventService.Delete(c.Request().Context(), identity.UserID, identity.Role, c.Param("id")); err != nil {
		return err
	}
	return respond(c, http.StatusOK, "Event deleted successfully", nil)
}
