package bookingrequest

import "errors"

var (
	// ErrInvalidInput возвращается, когда черновик нельзя отправить (не прошел валидацию
	// или не указан пользователь)
	ErrInvalidInput = errors.New("bookingrequest: invalid input data")
)
