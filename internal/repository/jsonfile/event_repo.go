package jsonfile

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"eventbooking/internal/domain"
)

// EventRepository stores the events collection in a single JSON file.
type EventRepository struct {
	path   string
	logger *slog.Logger
	mu     sync.Mutex
}

// NewEventRepository creates an EventRepository backed by the file at path.
func NewEventRepository(path string, logger *slog.Logger) *EventRepository {
	return &EventRepository{path: path, logger: logger}
}

// ReadAll loads every stored event and re-runs field validation on each.
// A stored record that no longer validates fails the whole read: data
// edited out-of-band must surface, not half-load.
func (r *EventRepository) ReadAll(ctx context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.readAll()
}

func (r *EventRepository) readAll() ([]*domain.Event, error) {
	records := readArray[domain.Event](r.logger, r.path)
	events := make([]*domain.Event, 0, len(records))
	for _, rec := range records {
		// %v, not %w: an invalid stored record is an internal failure,
		// not a client validation error.
		ev, err := domain.NewEvent(rec.ID, rec.Title, rec.Description, rec.Date, rec.MaxSeats)
		if err != nil {
			return nil, fmt.Errorf("stored event %q is invalid: %v", rec.ID, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// SaveAll overwrites the stored collection.
func (r *EventRepository) SaveAll(ctx context.Context, events []*domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeArray(r.path, events)
}

// FindByID scans the collection for an exact id match.
func (r *EventRepository) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	events, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, ev := range events {
		if ev.ID == id {
			return ev, nil
		}
	}
	return nil, domain.NotFound("event not found")
}

// FindAll returns the events matching every filter. Each filter keeps the
// events whose named field, lowercased and stringified, contains the
// lowercased filter value as a substring. Filtering on a field that is not
// an event attribute matches nothing.
func (r *EventRepository) FindAll(ctx context.Context, filters map[string]string) ([]*domain.Event, error) {
	events, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for key, value := range filters {
		want := strings.ToLower(value)
		kept := events[:0]
		for _, ev := range events {
			field, ok := eventField(ev, key)
			if ok && strings.Contains(strings.ToLower(field), want) {
				kept = append(kept, ev)
			}
		}
		events = kept
	}
	return events, nil
}

// eventField stringifies the named attribute for filtering.
func eventField(e *domain.Event, key string) (string, bool) {
	switch key {
	case "id":
		return e.ID, true
	case "title":
		return e.Title, true
	case "description":
		return e.Description, true
	case "date":
		return e.Date, true
	case "maxSeats":
		return strconv.Itoa(e.MaxSeats), true
	default:
		return "", false
	}
}
