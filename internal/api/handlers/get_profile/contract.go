package get_profile

import (
	"context"

	roomModels "github.com/campusrec/RoomBookingService/internal/service/rooms/models"
)

type RoomsService interface {
	Profile(ctx context.Context, memberID string, lookaheadDays int) (*roomModels.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
