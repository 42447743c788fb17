package vehicle

import "github.com/m04kA/SMC-VehicleRegistry/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
