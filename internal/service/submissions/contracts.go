package submissions

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

// SubmissionRepository интерфейс журнала попыток отправки
type SubmissionRepository interface {
	ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.Submission, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
