package services

import (
	"context"
	"fmt"
	"sync"

	"eventbooking/internal/domain"
)

type eventService struct {
	eventRepo domain.EventRepository

	// mu serializes read-modify-write cycles on the events collection.
	mu sync.Mutex
}

// NewEventService creates an EventService over the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{eventRepo: eventRepo}
}

func (s *eventService) ListEvents(ctx context.Context, filters map[string]string) ([]*domain.Event, error) {
	events, err := s.eventRepo.FindAll(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEvent validates the fields first (400 before 409), then rejects a
// duplicate id, then appends and persists the whole collection.
func (s *eventService) CreateEvent(ctx context.Context, id, title, description, date string, maxSeats int) (*domain.Event, error) {
	event, err := domain.NewEvent(id, title, description, date, maxSeats)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	for _, existing := range events {
		if existing.ID == event.ID {
			return nil, domain.Conflict("an event with this id already exists")
		}
	}

	events = append(events, event)
	if err := s.eventRepo.SaveAll(ctx, events); err != nil {
		return nil, fmt.Errorf("save events: %w", err)
	}
	return event, nil
}

// UpdateEvent overwrites only the fields supplied in the input, re-validates
// the whole record, and persists. The id itself is immutable.
func (s *eventService) UpdateEvent(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events, err := s.eventRepo.ReadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	idx := -1
	for i, ev := range events {
		if ev.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.NotFound("event not found")
	}

	current := events[idx]
	title := current.Title
	description := current.Description
	date := current.Date
	maxSeats := current.MaxSeats
	if in.Title != nil {
		title = *in.Title
	}
	if in.Description != nil {
		description = *in.Description
	}
	if in.Date != nil {
		date = *in.Date
	}
	if in.MaxSeats != nil {
		maxSeats = *in.MaxSeats
	}

	updated, err := domain.NewEvent(current.ID, title, description, date, maxSeats)
	if err != nil {
		return nil, err
	}

	events[idx] = updated
	if err := s.eventRepo.SaveAll(ctx, events); err != nil {
		return nil, fmt.Errorf("save events: %w", err)
	}
	return updated, nil
}
