package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"eventbooking/internal/domain"
)

type reservationService struct {
	eventRepo       domain.EventRepository
	reservationRepo domain.ReservationRepository
	emailService    domain.EmailService
	logger          *slog.Logger

	// mu serializes read-modify-write cycles on the reservations collection,
	// so two overlapping creates cannot both pass the capacity check.
	mu sync.Mutex
}

// NewReservationService creates a ReservationService. emailService may be
// nil when confirmations are not configured.
func NewReservationService(
	eventRepo domain.EventRepository,
	reservationRepo domain.ReservationRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.ReservationService {
	return &reservationService{
		eventRepo:       eventRepo,
		reservationRepo: reservationRepo,
		emailService:    emailService,
		logger:          logger,
	}
}

func (s *reservationService) ListReservations(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	reservations, err := s.reservationRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	return reservations, nil
}

// CreateReservation enforces the reservation rules in a fixed order:
// event existence, event-date cutoff, seat capacity, field validity,
// id uniqueness. Existence and temporal checks come first so that a
// malformed request against a sold-out or expired event is still reported
// as "event already past" or "no seats available".
func (s *reservationService) CreateReservation(ctx context.Context, eventID, id, firstName, lastName, email string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if err := s.checkNotPast(event); err != nil {
		return nil, err
	}

	existing, err := s.reservationRepo.FindByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}
	if len(existing) >= event.MaxSeats {
		return nil, domain.Invalid("no seats available")
	}

	reservation, err := domain.NewReservation(id, firstName, lastName, email, eventID)
	if err != nil {
		return nil, err
	}

	all, err := s.reservationRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read reservations: %w", err)
	}
	for _, r := range all {
		if r.ID == reservation.ID {
			return nil, domain.Conflict("a reservation with this id already exists")
		}
	}

	all = append(all, reservation)
	if err := s.reservationRepo.SaveAll(ctx, all); err != nil {
		return nil, fmt.Errorf("save reservations: %w", err)
	}

	s.sendConfirmation(ctx, event, reservation)
	return reservation, nil
}

// DeleteReservation removes the reservation matching both eventID and
// reservationID. Like creation, it is refused once the event date has elapsed.
func (s *reservationService) DeleteReservation(ctx context.Context, eventID, reservationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.checkNotPast(event); err != nil {
		return err
	}

	all, err := s.reservationRepo.ReadAll(ctx)
	if err != nil {
		return fmt.Errorf("read reservations: %w", err)
	}
	idx := -1
	for i, r := range all {
		if r.ID == reservationID && r.EventID == eventID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.NotFound("reservation not found for this event")
	}

	all = append(all[:idx], all[idx+1:]...)
	if err := s.reservationRepo.SaveAll(ctx, all); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

// checkNotPast rejects the operation when the event date is strictly
// before the current instant.
func (s *reservationService) checkNotPast(event *domain.Event) error {
	starts, err := event.Starts()
	if err != nil {
		return fmt.Errorf("parse event date: %w", err)
	}
	if starts.Before(time.Now()) {
		return domain.Invalid("event already past")
	}
	return nil
}

// sendConfirmation emails the guest after a successful create. Best effort:
// a mail failure is logged and never surfaced to the API caller.
func (s *reservationService) sendConfirmation(ctx context.Context, event *domain.Event, reservation *domain.Reservation) {
	if s.emailService == nil {
		return
	}
	data := &domain.ReservationConfirmationEmailData{
		Email:         reservation.Email,
		FirstName:     reservation.FirstName,
		EventTitle:    event.Title,
		EventDate:     event.Date,
		ReservationID: reservation.ID,
	}
	if err := s.emailService.SendReservationConfirmation(ctx, data); err != nil {
		s.logger.Warn("reservation confirmation email failed",
			"reservation_id", reservation.ID,
			"event_id", event.ID,
			"err", err,
		)
	}
}
