package get_rooms

import (
	"context"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type RoomsService interface {
	ListRooms(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
