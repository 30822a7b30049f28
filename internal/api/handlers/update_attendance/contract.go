package update_attendance

import (
	"context"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type RoomsService interface {
	SetAttendance(ctx context.Context, id string, req *roomModels.SetAttendanceRequest) (*roomModels.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
