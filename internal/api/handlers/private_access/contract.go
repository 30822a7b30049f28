package private_access

import (
	"context"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type RoomsService interface {
	LookupPrivateByCode(ctx context.Context, memberID string, code string) (*roomModels.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
