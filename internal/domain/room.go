package domain

import "strings"

// Room represents a bookable room as published by the room directory.
// Read-only for this service: rooms are created and deactivated elsewhere.
type Room struct {
	ID          int64
	Name        string
	Location    string
	Capacity    int
	IsActive    bool
	Facilities  []string
	Description *string
}

// HasFacility returns true if the room carries the given facility tag (case-insensitive)
func (r *Room) HasFacility(tag string) bool {
	for _, f := range r.Facilities {
		if strings.EqualFold(f, tag) {
			return true
		}
	}
	return false
}

// FitsGroup returns true if the room can seat the given number of people
func (r *Room) FitsGroup(people int) bool {
	return r.Capacity >= people
}

// ActiveRooms keeps only rooms open for booking
func ActiveRooms(rooms []Room) []Room {
	active := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if r.IsActive {
			active = append(active, r)
		}
	}
	return active
}

// RoomFilter optional constraints on room listings. Zero values match everything.
type RoomFilter struct {
	MinCapacity int
	Facility    string
}

// Match returns true if the room satisfies the filter
func (f RoomFilter) Match(r *Room) bool {
	if f.MinCapacity > 0 && !r.FitsGroup(f.MinCapacity) {
		return false
	}
	if f.Facility != "" && !r.HasFacility(f.Facility) {
		return false
	}
	return true
}
