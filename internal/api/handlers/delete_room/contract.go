package delete_room

import "context"

type RoomsService interface {
	Remove(ctx context.Context, id string, memberID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
