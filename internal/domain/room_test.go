package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomFilter_Match(t *testing.T) {
	room := &Room{ID: 1, Name: "Reading Room A", Capacity: 8, IsActive: true, Facilities: []string{"projector", "whiteboard"}}

	tests := []struct {
		name   string
		filter RoomFilter
		want   bool
	}{
		{name: "empty filter", filter: RoomFilter{}, want: true},
		{name: "capacity fits", filter: RoomFilter{MinCapacity: 8}, want: true},
		{name: "capacity too small", filter: RoomFilter{MinCapacity: 9}, want: false},
		{name: "facility present", filter: RoomFilter{Facility: "projector"}, want: true},
		{name: "facility any case", filter: RoomFilter{Facility: "Projector"}, want: true},
		{name: "facility missing", filter: RoomFilter{Facility: "piano"}, want: false},
		{name: "both", filter: RoomFilter{MinCapacity: 4, Facility: "whiteboard"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Match(room))
		})
	}
}

func TestActiveRooms(t *testing.T) {
	rooms := []Room{
		{ID: 1, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 3, IsActive: true},
	}

	active := ActiveRooms(rooms)

	assert.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestValidationResult(t *testing.T) {
	result := NewValidationResult()
	assert.True(t, result.Valid())

	result.Add(FieldPurpose, CodePurposeTooShort)
	result.Add(FieldDate, CodeMissingDate)
	result.Add(FieldDate, CodePastDate)

	assert.False(t, result.Valid())
	assert.Len(t, result, 2)
	assert.True(t, result.Has(FieldDate, CodePastDate))
	assert.False(t, result.Has(FieldDate, CodeMissingDate))
	assert.Equal(t, CodePurposeTooShort.Message(), result.Messages()["purpose"])
	assert.Equal(t, "PastDate", result.Codes()["bookingDate"])
}

func TestBookingDraft_Key(t *testing.T) {
	a := &BookingDraft{RoomID: "7", BookingDate: "2026-10-20", StartTime: "10:00", EndTime: "12:00", Purpose: "one"}
	b := &BookingDraft{RoomID: " 7", BookingDate: "2026-10-20 ", StartTime: "10:00", EndTime: "12:00", Purpose: "two"}

	assert.Equal(t, a.Key(42), b.Key(42))
	assert.NotEqual(t, a.Key(42), a.Key(43))
}
