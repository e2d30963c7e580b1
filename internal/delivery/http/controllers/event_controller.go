package controllers

import (
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// CreateEventRequest is the request body for POST /events.
type CreateEventRequest struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	MaxSeats    int    `json:"maxSeats"`
}

// UpdateEventRequest is the request body for PUT /events/{eventID}.
// Absent fields are left untouched.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	MaxSeats    *int    `json:"maxSeats"`
}

// EventController handles the /events routes.
type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

// NewEventController creates an EventController.
func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// Index godoc
// @Summary List events
// @Description Lists all events. Every query parameter is treated as a field filter: an event matches when the field contains the value, case-insensitively. Filtering on an unknown field returns an empty list.
// @Tags events
// @Produce json
// @Param title query string false "Substring filter on title (any event field name works the same way)"
// @Success 200 {array} domain.Event
// @Router /events [get]
func (c *EventController) Index(w http.ResponseWriter, r *http.Request) {
	filters := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filters[key] = values[0]
		}
	}
	events, err := c.Service.ListEvents(r.Context(), filters)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// Show godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param eventID path string true "Event id"
// @Success 200 {object} domain.Event
// @Failure 404 {object} helpers.ErrorResponse
// @Router /events/{eventID} [get]
func (c *EventController) Show(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("eventID")
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// Store godoc
// @Summary Create an event
// @Description Creates an event. id, title, date and maxSeats are required; description is optional. The id must not collide with an existing event.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) Store(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.ID, req.Title, req.Description, req.Date, req.MaxSeats)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}

// Update godoc
// @Summary Update an event
// @Description Updates only the fields present in the body (title, description, date, maxSeats). Each supplied field is re-validated.
// @Tags events
// @Accept json
// @Produce json
// @Param eventID path string true "Event id"
// @Param event body UpdateEventRequest true "Fields to update"
// @Success 200 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /events/{eventID} [put]
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("eventID")
	var req UpdateEventRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), id, domain.UpdateEventInput{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		MaxSeats:    req.MaxSeats,
	})
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}
