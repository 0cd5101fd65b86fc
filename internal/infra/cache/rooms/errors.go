package rooms

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из redis
	ErrCacheRead = errors.New("rooms.cache: read failed")

	// ErrCacheWrite возвращается при ошибке записи в redis
	ErrCacheWrite = errors.New("rooms.cache: write failed")

	// ErrDecode возвращается, когда в кеше лежат данные неизвестного формата
	ErrDecode = errors.New("rooms.cache: failed to decode cached value")
)
