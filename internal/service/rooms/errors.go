package rooms

import "errors"

var (
	// ErrDirectoryUnavailable возвращается, когда RoomDirectory недоступен
	ErrDirectoryUnavailable = errors.New("rooms: room directory unavailable")
)
