package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventbooking/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeReservationService implements domain.ReservationService for controller tests.
type fakeReservationService struct {
	listResult   []*domain.Reservation
	listErr      error
	createResult *domain.Reservation
	createErr    error
	deleteErr    error

	lastListEventID   string
	lastCreateEventID string
	lastCreateID      string
	lastCreateEmail   string
	lastDeleteEventID string
	lastDeleteID      string
}

func (f *fakeReservationService) ListReservations(ctx context.Context, eventID string) ([]*domain.Reservation, error) {
	f.lastListEventID = eventID
	return f.listResult, f.listErr
}

func (f *fakeReservationService) CreateReservation(ctx context.Context, eventID, id, firstName, lastName, email string) (*domain.Reservation, error) {
	f.lastCreateEventID = eventID
	f.lastCreateID = id
	f.lastCreateEmail = email
	return f.createResult, f.createErr
}

func (f *fakeReservationService) DeleteReservation(ctx context.Context, eventID, reservationID string) error {
	f.lastDeleteEventID = eventID
	f.lastDeleteID = reservationID
	return f.deleteErr
}

func testReservation() *domain.Reservation {
	return &domain.Reservation{ID: "r1", FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", EventID: "e1"}
}

func TestReservationControllerIndex(t *testing.T) {
	t.Run("lists reservations for the event", func(t *testing.T) {
		svc := &fakeReservationService{listResult: []*domain.Reservation{testReservation()}}
		c := NewReservationController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/events/e1/reservations", nil)
		req.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		c.Index(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "e1", svc.lastListEventID)

		var got []*domain.Reservation
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "r1", got[0].ID)
	})

	t.Run("nil result encodes as empty array", func(t *testing.T) {
		c := NewReservationController(testLogger, &fakeReservationService{})

		req := httptest.NewRequest(http.MethodGet, "/events/e1/reservations", nil)
		req.SetPathValue("eventID", "e1")
		rec := httptest.NewRecorder()
		c.Index(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("missing event id is a 400", func(t *testing.T) {
		c := NewReservationController(testLogger, &fakeReservationService{})

		req := httptest.NewRequest(http.MethodGet, "/events//reservations", nil)
		req.SetPathValue("eventID", "")
		rec := httptest.NewRecorder()
		c.Index(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestReservationControllerStore(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		svc        *fakeReservationService
		wantStatus int
		wantError  string
	}{
		{
			name:       "created",
			body:       `{"id":"r1","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:        &fakeReservationService{createResult: testReservation()},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "unknown event maps to 404",
			body:       `{"id":"r1","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:        &fakeReservationService{createErr: domain.NotFound("event not found")},
			wantStatus: http.StatusNotFound,
			wantError:  "event not found",
		},
		{
			name:       "sold out maps to 400",
			body:       `{"id":"r1","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:        &fakeReservationService{createErr: domain.Invalid("no seats available")},
			wantStatus: http.StatusBadRequest,
			wantError:  "no seats available",
		},
		{
			name:       "duplicate id maps to 409",
			body:       `{"id":"r1","firstName":"Ada","lastName":"Lovelace","email":"ada@example.com"}`,
			svc:        &fakeReservationService{createErr: domain.Conflict("a reservation with this id already exists")},
			wantStatus: http.StatusConflict,
			wantError:  "a reservation with this id already exists",
		},
		{
			name:       "malformed body maps to 400",
			body:       `{"id":`,
			svc:        &fakeReservationService{},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewReservationController(testLogger, tt.svc)

			req := httptest.NewRequest(http.MethodPost, "/events/e1/reservations", bytes.NewBufferString(tt.body))
			req.SetPathValue("eventID", "e1")
			rec := httptest.NewRecorder()
			c.Store(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantError != "" {
				assert.JSONEq(t, `{"error":"`+tt.wantError+`"}`, rec.Body.String())
			}
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, "e1", tt.svc.lastCreateEventID)
				assert.Equal(t, "r1", tt.svc.lastCreateID)
			}
		})
	}
}

func TestReservationControllerDestroy(t *testing.T) {
	t.Run("deleted returns 204 with empty body", func(t *testing.T) {
		svc := &fakeReservationService{}
		c := NewReservationController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/events/e1/reservations/r1", nil)
		req.SetPathValue("eventID", "e1")
		req.SetPathValue("reservationID", "r1")
		rec := httptest.NewRecorder()
		c.Destroy(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
		assert.Equal(t, "e1", svc.lastDeleteEventID)
		assert.Equal(t, "r1", svc.lastDeleteID)
	})

	t.Run("unknown reservation maps to 404", func(t *testing.T) {
		svc := &fakeReservationService{deleteErr: domain.NotFound("reservation not found for this event")}
		c := NewReservationController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/events/e1/reservations/missing", nil)
		req.SetPathValue("eventID", "e1")
		req.SetPathValue("reservationID", "missing")
		rec := httptest.NewRecorder()
		c.Destroy(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"reservation not found for this event"}`, rec.Body.String())
	})

	t.Run("past event maps to 400", func(t *testing.T) {
		svc := &fakeReservationService{deleteErr: domain.Invalid("event already past")}
		c := NewReservationController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/events/e1/reservations/r1", nil)
		req.SetPathValue("eventID", "e1")
		req.SetPathValue("reservationID", "r1")
		rec := httptest.NewRecorder()
		c.Destroy(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
