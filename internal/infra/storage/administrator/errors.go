package administrator

import "errors"

var (
	// ErrAdministratorNotFound возвращается, когда администратор не найден
	ErrAdministratorNotFound = errors.New("administrator.repository: administrator not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("administrator.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("administrator.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("administrator.repository: failed to scan row")
)
