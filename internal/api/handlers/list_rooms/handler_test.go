package list_rooms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/service/rooms"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	rooms  []domain.Room
	err    error
	filter domain.RoomFilter
}

func (s *fakeService) ListRooms(_ context.Context, filter domain.RoomFilter) ([]domain.Room, error) {
	s.filter = filter
	return s.rooms, s.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{rooms: []domain.Room{{ID: 1, Name: "Reading Room A", Capacity: 8, IsActive: true}}}
	h := NewHandler(svc, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?minCapacity=4&facility=projector", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []handlers.RoomResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Reading Room A", resp[0].Name)
	assert.Equal(t, domain.RoomFilter{MinCapacity: 4, Facility: "projector"}, svc.filter)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{name: "bad capacity", url: "/api/v1/rooms?minCapacity=lots", wantStatus: http.StatusBadRequest},
		{name: "directory down", url: "/api/v1/rooms", err: fmt.Errorf("%w: timeout", rooms.ErrDirectoryUnavailable), wantStatus: http.StatusBadGateway},
		{name: "unexpected", url: "/api/v1/rooms", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
