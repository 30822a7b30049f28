package reservation

import "github.com/campusrec/RoomBookingService/pkg/txmanager"

// DBExecutor переиспользует интерфейс txmanager для работы с БД.
// Поддерживает *sql.DB и *sql.Tx из контекста транзакции.
type DBExecutor = txmanager.DBExecutor
