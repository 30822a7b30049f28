package create_room

import (
	"context"

	createRoom "github.com/campusrec/RoomBookingService/internal/usecase/create_room"
)

type CreateRoomUseCase interface {
	Execute(ctx context.Context, req *createRoom.Request) (*createRoom.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
