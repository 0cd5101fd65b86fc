package roomdirectory

import "errors"

var (
	// ErrUnavailable возвращается при сетевых ошибках и таймаутах
	ErrUnavailable = errors.New("roomdirectory client: service unavailable")

	// ErrRequestFailed возвращается, когда сервис ответил без success=true
	ErrRequestFailed = errors.New("roomdirectory client: request failed")

	// ErrInvalidResponse возвращается при ответе неожиданной формы
	ErrInvalidResponse = errors.New("roomdirectory client: invalid response")
)
