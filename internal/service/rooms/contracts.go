package rooms

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/roomdirectory"
)

// RoomDirectoryClient интерфейс клиента RoomDirectory
type RoomDirectoryClient interface {
	GetAllRooms(ctx context.Context) ([]roomdirectory.Room, error)
	GetAvailableRooms(ctx context.Context, date string) ([]roomdirectory.Room, error)
}

// RoomCache кеш списков аудиторий
type RoomCache interface {
	Get(ctx context.Context, key string) ([]domain.Room, bool, error)
	Set(ctx context.Context, key string, rooms []domain.Room) error
}

// CacheMetrics счетчик попаданий в кеш
type CacheMetrics interface {
	RecordCacheLookup(hit bool)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
