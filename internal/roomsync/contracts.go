package roomsync

import (
	"context"

	"github.com/campusrec/RoomBookingService/internal/domain"
)

// RemoteClient интерфейс клиента удаленного источника комнат
type RemoteClient interface {
	FetchRooms(ctx context.Context, memberID string) ([]*domain.Reservation, error)
}

// SnapshotStore интерфейс локального зеркала снапшота
type SnapshotStore interface {
	Save(ctx context.Context, reservations []*domain.Reservation) error
	Load(ctx context.Context) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
