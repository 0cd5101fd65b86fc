package submission

import "errors"

var (
	// ErrDuplicate возвращается при повторной записи попытки с тем же ID
	ErrDuplicate = errors.New("submission.repository: duplicate submission id")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("submission.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("submission.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("submission.repository: failed to scan row")
)
