package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventbooking/internal/delivery/http/controllers"
	"eventbooking/internal/delivery/http/helpers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(eventController *controllers.EventController, reservationController *controllers.ReservationController) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("GET /events", eventController.Index)
	mux.HandleFunc("POST /events", eventController.Store)
	mux.HandleFunc("GET /events/{eventID}", eventController.Show)
	mux.HandleFunc("PUT /events/{eventID}", eventController.Update)

	// Reservations, nested under their event
	mux.HandleFunc("GET /events/{eventID}/reservations", reservationController.Index)
	mux.HandleFunc("POST /events/{eventID}/reservations", reservationController.Store)
	mux.HandleFunc("DELETE /events/{eventID}/reservations/{reservationID}", reservationController.Destroy)

	// Health
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		helpers.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
