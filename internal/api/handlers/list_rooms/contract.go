package list_rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

type RoomService interface {
	ListRooms(ctx context.Context, filter domain.RoomFilter) ([]domain.Room, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
