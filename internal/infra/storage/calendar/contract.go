package calendar

import "github.com/m04kA/StayFinder-BookingService/pkg/dbmetrics"

// Переиспользуем интерфейс из dbmetrics для работы с БД.
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor
