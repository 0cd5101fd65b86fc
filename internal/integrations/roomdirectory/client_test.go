package roomdirectory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, nopLogger{})
}

func TestGetAlternativeRooms_SingleObjectLiftedToList(t *testing.T) {
	var gotPath, gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"id":1,"name":"Reading Room A","location":"Floor 2","capacity":8,"isActive":true,"facilities":["projector","projector","whiteboard"]}}`))
	})

	rooms, err := client.GetAlternativeRooms(context.Background(), 7, "2026-10-20", "10:00", "12:00")
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	assert.Equal(t, "/rooms/7/alternatives", gotPath)
	assert.Contains(t, gotQuery, "date=2026-10-20")
	assert.Contains(t, gotQuery, "startTime=10%3A00")
	assert.Contains(t, gotQuery, "endTime=12%3A00")

	room := rooms[0].ToDomain()
	assert.Equal(t, int64(1), room.ID)
	assert.Equal(t, []string{"projector", "whiteboard"}, room.Facilities)
}

func TestGetAlternativeRooms_ListAndEmptyShapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "array", body: `{"success":true,"data":[{"id":1,"name":"A","capacity":4},{"id":2,"name":"B","capacity":6}]}`, want: 2},
		{name: "null data", body: `{"success":true,"data":null}`, want: 0},
		{name: "no data", body: `{"success":true}`, want: 0},
		{name: "empty array", body: `{"success":true,"data":[]}`, want: 0},
		{name: "malformed record dropped", body: `{"success":true,"data":[{"id":0,"name":"broken","capacity":4},{"id":3,"name":"C","capacity":2}]}`, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			})

			rooms, err := client.GetAlternativeRooms(context.Background(), 1, "2026-10-20", "10:00", "11:00")
			require.NoError(t, err)
			assert.Len(t, rooms, tt.want)
			assert.NotNil(t, rooms)
		})
	}
}

func TestFetchRooms_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "success false on 200", status: http.StatusOK, body: `{"success":false,"message":"room directory offline"}`, wantErr: ErrRequestFailed},
		{name: "missing success flag", status: http.StatusOK, body: `{"data":[]}`, wantErr: ErrRequestFailed},
		{name: "non json 500", status: http.StatusInternalServerError, body: `oops`, wantErr: ErrRequestFailed},
		{name: "non json 200", status: http.StatusOK, body: `<html>`, wantErr: ErrInvalidResponse},
		{name: "scalar data", status: http.StatusOK, body: `{"success":true,"data":42}`, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.GetAllRooms(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetAvailableRooms_SendsDate(t *testing.T) {
	var gotDate string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rooms/available", r.URL.Path)
		gotDate = r.URL.Query().Get("date")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":5,"name":"Study Pod","capacity":2,"isActive":true}]}`))
	})

	rooms, err := client.GetAvailableRooms(context.Background(), "2026-10-21")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-21", gotDate)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Study Pod", rooms[0].Name)
}

func TestFetchRooms_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, time.Second, nopLogger{})
	_, err := client.GetAllRooms(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}
