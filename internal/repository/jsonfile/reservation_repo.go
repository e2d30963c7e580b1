package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"eventbooking/internal/domain"
)

// ReservationRepository stores the reservations collection in a single JSON file.
type ReservationRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewReservationRepository creates a ReservationRepository backed by the file at path.
func NewReservationRepository(path string, logger *slog.Logger) *ReservationRepository {
	return &ReservationRepository{path: path, logger: logger}
}

// ReadAll loads every stored reservation and re-runs field validation on each.
func (r *ReservationRepository) ReadAll(ctx context.Context) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	records := readArray[domain.Reservation](r.logger, r.path)
	reservations := make([]*domain.Reservation, 0, len(records))
	for _, rec := range records {
		res, err := domain.NewReservation(rec.ID, rec.FirstName, rec.LastName, rec.Email, rec.EventID)
		if err != nil {
			return nil, fmt.Errorf("stored reservation %q is invalid: %v", rec.ID, err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}

// SaveAll overwrites the stored collection.
func (r *ReservationRepository) SaveAll(ctx context.Context, reservations []*domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeArray(r.path, reservations)
}

// FindByEvent returns the reservations whose eventId matches exactly.
// Unlike event filters this is not a substring match.
func (r *ReservationRepository) FindByEvent(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	all, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]*domain.Reservation, 0)
	for _, res := range all {
		if res.EventID == eventID {
			matched = append(matched, res)
		}
	}
	return matched, nil
}
