package submit_booking

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

type BookingRequestValidator interface {
	Validate(draft *domain.BookingDraft) domain.ValidationResult
	Submit(ctx context.Context, requester domain.Requester, draft *domain.BookingDraft) (domain.Outcome, error)
	FetchAlternatives(ctx context.Context, roomID int64, date, startTime, endTime string) []domain.AlternativeSuggestion
}

// SubmissionGuard не дает отправить один и тот же черновик повторно, пока идет отправка
type SubmissionGuard interface {
	TryAcquire(key string) bool
	Release(key string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
