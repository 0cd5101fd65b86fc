package bookinggateway

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable возвращается при сетевых ошибках и таймаутах
	ErrUnavailable = errors.New("bookinggateway client: service unavailable")

	// ErrRejected возвращается, когда сервис не подтвердил создание (success != true)
	ErrRejected = errors.New("bookinggateway client: booking rejected")

	// ErrInvalidResponse возвращается при ответе неожиданной формы
	ErrInvalidResponse = errors.New("bookinggateway client: invalid response")
)

// RejectionError отказ сервиса бронирований с текстом сообщения.
// Сервис не возвращает структурированный код ошибки, поэтому доступен только текст.
type RejectionError struct {
	StatusCode int
	Message    string
}

func (e *RejectionError) Error() string {
	return fmt.Sprintf("%s: status=%d, message=%s", ErrRejected, e.StatusCode, e.Message)
}

func (e *RejectionError) Unwrap() error {
	return ErrRejected
}
