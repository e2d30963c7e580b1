package domain

import (
	"context"
	"time"
)

// Accepted layouts for the event date, tried in order. The raw string is
// persisted unchanged; it is only parsed for validation and the past-event cutoff.
var eventDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEventDate parses an event date string against the accepted layouts.
func ParseEventDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range eventDateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Event represents a schedulable activity with a seat capacity.
// swagger:model Event
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	MaxSeats    int    `json:"maxSeats"`
}

// NewEvent validates all fields up front and returns a fully valid Event,
// or a ValidationError naming the first offending field. No partially
// valid Event ever exists.
func NewEvent(id, title, description, date string, maxSeats int) (*Event, error) {
	if id == "" {
		return nil, Invalid("event id is missing or not valid")
	}
	if title == "" {
		return nil, Invalid("event title is missing or not valid")
	}
	if date == "" {
		return nil, Invalid("event date is missing or not valid")
	}
	if _, err := ParseEventDate(date); err != nil {
		return nil, Invalid("event date is missing or not valid")
	}
	if maxSeats < 1 {
		return nil, Invalid("event maxSeats is missing or not valid")
	}
	return &Event{
		ID:          id,
		Title:       title,
		Description: description,
		Date:        date,
		MaxSeats:    maxSeats,
	}, nil
}

// Starts returns the event date as a point in time.
func (e *Event) Starts() (time.Time, error) {
	return ParseEventDate(e.Date)
}

// UpdateEventInput carries a partial update; nil fields are left untouched.
type UpdateEventInput struct {
	Title       *string
	Description *string
	Date        *string
	MaxSeats    *int
}

// EventRepository defines storage operations over the events collection.
// Implementations load and persist the whole collection on every call.
type EventRepository interface {
	// ReadAll loads and re-validates every stored event. A stored record
	// that no longer passes validation fails the whole read.
	ReadAll(ctx context.Context) ([]*Event, error)
	// SaveAll overwrites the stored collection with the given events.
	SaveAll(ctx context.Context, events []*Event) error
	// FindByID returns the event with the given id, or a NotFoundError.
	FindByID(ctx context.Context, id string) (*Event, error)
	// FindAll returns events matching every filter. A filter matches when the
	// named field, lowercased and stringified, contains the lowercased value
	// as a substring. A filter on an unknown field matches nothing.
	FindAll(ctx context.Context, filters map[string]string) ([]*Event, error)
}

// EventService defines the event-facing API operations.
type EventService interface {
	ListEvents(ctx context.Context, filters map[string]string) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, id, title, description, date string, maxSeats int) (*Event, error)
	UpdateEvent(ctx context.Context, id string, in UpdateEventInput) (*Event, error)
}
