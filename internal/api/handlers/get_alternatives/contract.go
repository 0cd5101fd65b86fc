package get_alternatives

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

type AlternativesFinder interface {
	FetchAlternatives(ctx context.Context, roomID int64, date, startTime, endTime string) []domain.AlternativeSuggestion
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
