package domain

import (
	"context"
	"regexp"
)

// emailRegex matches a simple email format (local@domain with at least one dot in domain).
var emailRegex = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// Reservation represents a claim on one seat of a specific event.
// swagger:model Reservation
type Reservation struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	EventID   string `json:"eventId"`
}

// NewReservation validates all fields up front and returns a fully valid
// Reservation, or a ValidationError naming the first offending field.
func NewReservation(id, firstName, lastName, email, eventID string) (*Reservation, error) {
	if id == "" {
		return nil, Invalid("reservation id is missing or not valid")
	}
	if firstName == "" {
		return nil, Invalid("firstName is missing or not valid")
	}
	if lastName == "" {
		return nil, Invalid("lastName is missing or not valid")
	}
	if !emailRegex.MatchString(email) {
		return nil, Invalid("email is missing or not valid")
	}
	if eventID == "" {
		return nil, Invalid("eventId is missing or not valid")
	}
	return &Reservation{
		ID:        id,
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		EventID:   eventID,
	}, nil
}

// ReservationRepository defines storage operations over the reservations collection.
type ReservationRepository interface {
	ReadAll(ctx context.Context) ([]*Reservation, error)
	SaveAll(ctx context.Context, reservations []*Reservation) error
	// FindByEvent returns the reservations whose eventId matches exactly.
	FindByEvent(ctx context.Context, eventID string) ([]*Reservation, error)
}

// ReservationService defines reservation operations scoped to an event.
// Creation and deletion enforce the cross-entity rules: the event must
// exist, its date must not have elapsed, and a create must not exceed the
// event's seat capacity.
type ReservationService interface {
	ListReservations(ctx context.Context, eventID string) ([]*Reservation, error)
	CreateReservation(ctx context.Context, eventID, id, firstName, lastName, email string) (*Reservation, error)
	DeleteReservation(ctx context.Context, eventID, reservationID string) error
}
