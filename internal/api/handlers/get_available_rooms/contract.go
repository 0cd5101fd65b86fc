package get_available_rooms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

type RoomService interface {
	ListAvailableRooms(ctx context.Context, date time.Time, filter domain.RoomFilter) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
