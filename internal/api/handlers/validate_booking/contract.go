package validate_booking

import (
	"github.com/m04kA/SMC-RoomBookingGateway/internal/domain"
)

type DraftValidator interface {
	Validate(draft *domain.BookingDraft) domain.ValidationResult
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
