package get_room

import (
	"context"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type RoomsService interface {
	GetByID(ctx context.Context, id string, memberID string) (*roomModels.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
