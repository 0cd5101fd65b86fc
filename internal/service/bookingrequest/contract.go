package bookingrequest

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/bookinggateway"
	"github.com/m04kA/SMC-RoomBookingGateway/internal/integrations/roomdirectory"
)

// RoomDirectoryClient интерфейс клиента RoomDirectory
type RoomDirectoryClient interface {
	GetAlternativeRooms(ctx context.Context, roomID int64, date, startTime, endTime string) ([]roomdirectory.Room, error)
}

// BookingGatewayClient интерфейс клиента BookingGateway
type BookingGatewayClient interface {
	CreateBooking(ctx context.Context, req *bookinggateway.CreateBookingRequest) (*bookinggateway.CreateBookingResult, error)
}

// SubmissionRepository журнал попыток отправки
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
}

// MetricsRecorder счетчики исходов
type MetricsRecorder interface {
	RecordSubmitOutcome(outcome string)
	RecordAlternatives(count int)
	RecordUpstreamError(service, operation string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
