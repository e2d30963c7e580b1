package jsonfile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEventRepo(t *testing.T) *EventRepository {
	t.Helper()
	return NewEventRepository(filepath.Join(t.TempDir(), "events.json"), testLogger)
}

func mustEvent(t *testing.T, id, title, description, date string, maxSeats int) *domain.Event {
	t.Helper()
	event, err := domain.NewEvent(id, title, description, date, maxSeats)
	require.NoError(t, err)
	return event
}

func TestEventRepositorySaveAllReadAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestEventRepo(t)

	saved := []*domain.Event{
		mustEvent(t, "e1", "Launch", "", "2099-01-01", 10),
		mustEvent(t, "e2", "Conference", "annual", "2099-06-15T09:00:00Z", 200),
	}
	require.NoError(t, repo.SaveAll(ctx, saved))

	got, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, saved[0], got[0])
	assert.Equal(t, saved[1], got[1])
}

func TestEventRepositoryReadAllEmptyWhenNoFile(t *testing.T) {
	repo := newTestEventRepo(t)
	got, err := repo.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestEventRepositoryReadAllFailsOnInvalidStoredRecord(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "events.json")
	repo := NewEventRepository(path, testLogger)

	// maxSeats 0 cannot pass validation; edited out-of-band.
	require.NoError(t, os.WriteFile(path, []byte(`[{"id":"e1","title":"Launch","date":"2099-01-01","maxSeats":0}]`), 0o644))

	_, err := repo.ReadAll(ctx)
	require.Error(t, err)
	// The failure is internal, not a client validation error.
	var validationErr *domain.ValidationError
	assert.False(t, errors.As(err, &validationErr))
	assert.Contains(t, err.Error(), `stored event "e1" is invalid`)
}

func TestEventRepositoryFindByID(t *testing.T) {
	ctx := context.Background()
	repo := newTestEventRepo(t)
	require.NoError(t, repo.SaveAll(ctx, []*domain.Event{
		mustEvent(t, "e1", "Launch", "", "2099-01-01", 10),
		mustEvent(t, "e2", "Conference", "", "2099-06-15", 200),
	}))

	event, err := repo.FindByID(ctx, "e2")
	require.NoError(t, err)
	assert.Equal(t, "Conference", event.Title)

	_, err = repo.FindByID(ctx, "missing")
	require.Error(t, err)
	var notFoundErr *domain.NotFoundError
	assert.True(t, errors.As(err, &notFoundErr))
}

func TestEventRepositoryFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestEventRepo(t)
	require.NoError(t, repo.SaveAll(ctx, []*domain.Event{
		mustEvent(t, "e1", "Go Conference", "talks and workshops", "2099-06-15", 200),
		mustEvent(t, "e2", "CONF dinner", "evening social", "2099-06-16", 40),
		mustEvent(t, "e3", "Hallway track", "informal", "2099-06-15", 40),
	}))

	tests := []struct {
		name    string
		filters map[string]string
		wantIDs []string
	}{
		{
			name:    "no filters returns everything",
			filters: nil,
			wantIDs: []string{"e1", "e2", "e3"},
		},
		{
			name:    "title substring is case-insensitive",
			filters: map[string]string{"title": "conf"},
			wantIDs: []string{"e1", "e2"},
		},
		{
			name:    "filters compose as AND",
			filters: map[string]string{"title": "conf", "date": "2099-06-15"},
			wantIDs: []string{"e1"},
		},
		{
			name:    "maxSeats is matched against its stringified value",
			filters: map[string]string{"maxSeats": "40"},
			wantIDs: []string{"e2", "e3"},
		},
		{
			name:    "unknown field matches nothing",
			filters: map[string]string{"organizer": "go"},
			wantIDs: []string{},
		},
		{
			name:    "no match",
			filters: map[string]string{"title": "opera"},
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events, err := repo.FindAll(ctx, tt.filters)
			require.NoError(t, err)
			gotIDs := make([]string, 0, len(events))
			for _, ev := range events {
				gotIDs = append(gotIDs, ev.ID)
			}
			assert.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}
