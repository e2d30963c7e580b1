package controllers

import (
	"log/slog"
	"net/http"

	"eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// CreateReservationRequest is the request body for POST /events/{eventID}/reservations.
type CreateReservationRequest struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// ReservationController handles the reservation routes nested under an event.
type ReservationController struct {
	Logger  *slog.Logger
	Service domain.ReservationService
}

// NewReservationController creates a ReservationController.
func NewReservationController(logger *slog.Logger, svc domain.ReservationService) *ReservationController {
	return &ReservationController{Logger: logger, Service: svc}
}

// Index godoc
// @Summary List reservations for an event
// @Tags reservations
// @Produce json
// @Param eventID path string true "Event id"
// @Success 200 {array} domain.Reservation
// @Failure 400 {object} helpers.ErrorResponse
// @Router /events/{eventID}/reservations [get]
func (c *ReservationController) Index(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "event id is required")
		return
	}
	reservations, err := c.Service.ListReservations(r.Context(), eventID)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	if reservations == nil {
		reservations = []*domain.Reservation{}
	}
	helpers.WriteJSON(w, http.StatusOK, reservations)
}

// Store godoc
// @Summary Create a reservation for an event
// @Description Creates a reservation. The event must exist, its date must not have elapsed, and it must have seats left; then id, firstName, lastName and email are validated and the id must be unique.
// @Tags reservations
// @Accept json
// @Produce json
// @Param eventID path string true "Event id"
// @Param reservation body CreateReservationRequest true "Reservation fields"
// @Success 201 {object} domain.Reservation
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 409 {object} helpers.ErrorResponse
// @Router /events/{eventID}/reservations [post]
func (c *ReservationController) Store(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "event id is required")
		return
	}
	var req CreateReservationRequest
	if !helpers.DecodeJSON(w, r, &req) {
		return
	}
	reservation, err := c.Service.CreateReservation(r.Context(), eventID, req.ID, req.FirstName, req.LastName, req.Email)
	if err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, reservation)
}

// Destroy godoc
// @Summary Delete a reservation
// @Description Deletes the reservation matching both the event id and the reservation id. Refused once the event date has elapsed.
// @Tags reservations
// @Param eventID path string true "Event id"
// @Param reservationID path string true "Reservation id"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Router /events/{eventID}/reservations/{reservationID} [delete]
func (c *ReservationController) Destroy(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	reservationID := r.PathValue("reservationID")
	if eventID == "" || reservationID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "event id and reservation id are required")
		return
	}
	if err := c.Service.DeleteReservation(r.Context(), eventID, reservationID); err != nil {
		writeDomainError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
